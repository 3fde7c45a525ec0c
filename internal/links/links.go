// Package links finds internal links in rendered pages that point nowhere.
package links

import (
	"bytes"
	"fmt"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pipeguru/docsite/internal/core"
)

// Extract returns the href of every anchor in the document, in order.
func Extract(doc []byte) ([]string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var hrefs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return hrefs, nil
}

// Checker knows the routes and files of a site.
type Checker struct {
	known map[string]struct{}
}

func NewChecker(targets []string) *Checker {
	known := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		known[core.NormalizePath(t)] = struct{}{}
	}
	return &Checker{known: known}
}

func (c *Checker) Exists(route string) bool {
	_, ok := c.known[core.NormalizePath(route)]
	return ok
}

// Check reports the broken internal links of each page. pages maps a route
// to its rendered html. The result is sorted by page, then by href.
func (c *Checker) Check(pages map[string][]byte) ([]core.BrokenLink, error) {
	var broken []core.BrokenLink

	for route, doc := range pages {
		hrefs, err := Extract(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", route, err)
		}

		seen := map[string]bool{}
		for _, href := range hrefs {
			target, internal := core.ResolveLink(route, href)
			if !internal || c.Exists(target) || seen[href] {
				continue
			}
			seen[href] = true
			broken = append(broken, core.BrokenLink{Page: route, Href: href, Target: target})
		}
	}

	sort.Slice(broken, func(i, j int) bool {
		if broken[i].Page != broken[j].Page {
			return broken[i].Page < broken[j].Page
		}
		return broken[i].Href < broken[j].Href
	})
	return broken, nil
}
