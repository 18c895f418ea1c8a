// Package sitemap renders sitemap.xml and robots.txt for the tool catalog.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// DefaultBaseURL is the public site the catalog is published under.
const DefaultBaseURL = "https://alltoolshub.pro"

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URL is one sitemap entry.
type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Entries lists the homepage (daily, priority 1) followed by every path
// (weekly, priority 0.8), all stamped with now.
func Entries(baseURL string, paths []string, now time.Time) []URL {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	stamp := now.UTC().Format(time.RFC3339)
	urls := make([]URL, 0, len(paths)+1)
	urls = append(urls, URL{Loc: base, LastMod: stamp, ChangeFreq: "daily", Priority: 1})
	for _, p := range paths {
		urls = append(urls, URL{Loc: base + p, LastMod: stamp, ChangeFreq: "weekly", Priority: 0.8})
	}
	return urls
}

// Build renders the sitemap document.
func Build(baseURL string, paths []string, now time.Time) ([]byte, error) {
	out, err := xml.MarshalIndent(urlSet{Xmlns: xmlns, URLs: Entries(baseURL, paths, now)}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// Robots renders robots.txt: everything allowed, sitemap under baseURL.
func Robots(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("User-Agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", base)
}
