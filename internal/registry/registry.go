// Package registry holds the catalog of tools. Tool packages register their
// descriptors from init; the home screen, the CLI and the sitemap read them
// back.
package registry

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/toolbelt/internal/qrcode"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/simulate"
)

// Category groups tools on the home screen.
type Category string

const (
	Any   Category = "all"
	File  Category = "file"
	Image Category = "image"
	Text  Category = "text"
)

// Categories is the tab order; Any comes first and matches everything.
var Categories = []Category{Any, File, Image, Text}

var labels = map[Category]string{
	Any:   "All Tools",
	File:  "File Conversion",
	Image: "Image & Media",
	Text:  "Text & Developer",
}

// Label is the display name of c.
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

// ParseCategory accepts a category id, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Categories, c) {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Deps are the shared collaborators a tool's Spec is built from.
type Deps struct {
	Env runner.Env
	// QR renders QR codes; nil means the public endpoint.
	QR *qrcode.Client
	// Rand drives cosmetic randomness (lorem ipsum, barcode bars); nil
	// means a randomly seeded source.
	Rand *rand.Rand
	// Sleep replaces the simulated tools' waits; nil means real time.
	Sleep simulate.Sleeper
}

// Mock applies d.Sleep to m.
func (d Deps) Mock(m *simulate.Mock) *simulate.Mock {
	if d.Sleep == nil {
		return m
	}
	return m.WithSleep(d.Sleep)
}

// QRClient returns d.QR or a default client.
func (d Deps) QRClient() *qrcode.Client {
	if d.QR == nil {
		return qrcode.New("", 0, 0)
	}
	return d.QR
}

// Tool describes a tool that can be launched from the home screen.
type Tool struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Spec        func(Deps) runner.Spec
}

// Path is the tool's route.
func (t Tool) Path() string {
	return "/tools/" + t.ID
}

// New builds the tool's screen.
func (t Tool) New(d Deps) tea.Model {
	return runner.New(t.Spec(d), d.Env)
}

var tools []Tool

// Register adds a tool to the registry. Registering an id twice panics.
func Register(t Tool) {
	if Get(t.ID) != nil {
		panic(fmt.Sprintf("registry: tool %q registered twice", t.ID))
	}
	tools = append(tools, t)
}

func categoryRank(c Category) int {
	if i := slices.Index(Categories, c); i >= 0 {
		return i
	}
	return len(Categories)
}

// All returns every registered tool in catalog order: by category, then by
// name.
func All() []Tool {
	out := slices.Clone(tools)
	slices.SortStableFunc(out, func(a, b Tool) int {
		if d := categoryRank(a.Category) - categoryRank(b.Category); d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Get returns the tool with the given ID, or nil if not found.
func Get(id string) *Tool {
	for i := range tools {
		if tools[i].ID == id {
			t := tools[i]
			return &t
		}
	}
	return nil
}

// Filter keeps the tools in category c (or every tool for Any) whose name or
// description contains query, ignoring case. Order is preserved.
func Filter(list []Tool, c Category, query string) []Tool {
	q := strings.ToLower(query)
	var out []Tool
	for _, t := range list {
		if c != Any && t.Category != c {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Name), q) && !strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Paths lists the route of every tool in catalog order.
func Paths() []string {
	all := All()
	paths := make([]string, len(all))
	for i, t := range all {
		paths[i] = t.Path()
	}
	return paths
}
