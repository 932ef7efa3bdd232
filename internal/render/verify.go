package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// LinkProblem describes one unresolvable internal link in a generated page.
type LinkProblem struct {
	Page string
	URL  string
}

func (p LinkProblem) String() string {
	return fmt.Sprintf("%s: broken link %q", p.Page, p.URL)
}

// VerifyLinks parses a generated HTML page and checks that every internal
// link (relative href/src) resolves to a file under the dist directory.
// External URLs, fragments, and mailto links are not checked; the build
// makes no network access. Problems are returned for reporting, a broken
// link is a warning, never a build failure.
func VerifyLinks(distDir, pageName string) ([]LinkProblem, error) {
	pagePath := filepath.Join(distDir, pageName)
	file, err := os.Open(filepath.Clean(pagePath))
	if err != nil {
		return nil, fmt.Errorf("open generated page: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	links, err := extractLinks(file)
	if err != nil {
		return nil, fmt.Errorf("parse generated page: %w", err)
	}

	var problems []LinkProblem
	for _, link := range links {
		if !isInternal(link) {
			continue
		}
		target := strings.SplitN(link, "#", 2)[0]
		if target == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(distDir, filepath.FromSlash(target))); err != nil {
			problems = append(problems, LinkProblem{Page: pageName, URL: link})
		}
	}
	return problems, nil
}

// extractLinks collects href and src attribute values from an HTML document.
func extractLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "href" || attr.Key == "src" {
					links = append(links, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func isInternal(link string) bool {
	switch {
	case link == "", strings.HasPrefix(link, "#"):
		return false
	case strings.Contains(link, "://"), strings.HasPrefix(link, "//"):
		return false
	case strings.HasPrefix(link, "mailto:"), strings.HasPrefix(link, "data:"):
		return false
	}
	return true
}
