// Package shell draws the chrome every tool screen shares: the back hint,
// the title block and the first-use instructions modal.
package shell

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/toolbelt/internal/styles"
)

// BackHint is shown above every tool.
const BackHint = "esc ← Back to Tools"

// Header renders the back hint, the tool title and its description.
func Header(title, description string) string {
	return styles.Help.Render(BackHint) + "\n\n" +
		styles.Title.Render(title) + "\n" +
		styles.Muted.Render(description) + "\n"
}

// Step is one instruction in the how-to modal.
type Step struct {
	Title       string
	Description string
}

// TextSteps turns bare instruction lines into steps with no description.
func TextSteps(lines ...string) []Step {
	steps := make([]Step, 0, len(lines))
	for _, l := range lines {
		steps = append(steps, Step{Title: l})
	}
	return steps
}

// Tutorial is the "How to Use This Tool" modal.
type Tutorial struct {
	Tool     string
	Steps    []Step
	open     bool
	dontShow bool
}

// NewTutorial returns a closed modal for tool.
func NewTutorial(tool string, steps []Step) Tutorial {
	return Tutorial{Tool: tool, Steps: steps}
}

// Open shows the modal. A tool without steps has nothing to show.
func (t Tutorial) Open() Tutorial {
	t.open = len(t.Steps) > 0
	t.dontShow = false
	return t
}

// Visible reports whether the modal is on screen.
func (t Tutorial) Visible() bool { return t.open }

// DontShowAgain reports the checkbox state.
func (t Tutorial) DontShowAgain() bool { return t.dontShow }

// Update handles a key while the modal is visible. closed is true when the
// modal was dismissed by this key; DontShowAgain then says whether the user
// asked never to see it again.
func (t Tutorial) Update(msg tea.KeyMsg) (Tutorial, bool) {
	if !t.open {
		return t, false
	}
	switch msg.String() {
	case " ", "x":
		t.dontShow = !t.dontShow
	case "enter", "esc", "q":
		t.open = false
		return t, true
	}
	return t, false
}

// View renders the modal, or "" when closed.
func (t Tutorial) View() string {
	if !t.open {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render("How to Use This Tool") + "\n")
	b.WriteString(styles.Muted.Render(t.Tool) + "\n\n")
	for i, s := range t.Steps {
		b.WriteString(styles.Selected.Render(fmt.Sprintf("%d.", i+1)) + " " + s.Title + "\n")
		if s.Description != "" {
			b.WriteString("   " + styles.Muted.Render(s.Description) + "\n")
		}
	}
	check := "[ ]"
	if t.dontShow {
		check = "[x]"
	}
	b.WriteString("\n" + check + " Don't show again\n\n")
	b.WriteString(styles.Help.Render("space toggle  enter Got it!"))
	return styles.Modal.Render(b.String())
}
