package docs

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/pipeguru/docsite/internal/core"
)

var ErrUnknownSidebar = errors.New("unknown sidebar")

// SidebarItem is either a link to a doc or a category holding more items.
type SidebarItem struct {
	Label string
	DocID string
	Items []SidebarItem
}

func (i SidebarItem) IsCategory() bool {
	return i.DocID == ""
}

type Sidebar struct {
	ID    string
	Items []SidebarItem
}

// Sidebars indexes the sidebars of a site by id.
type Sidebars map[string]Sidebar

func (s Sidebars) Get(id string) (Sidebar, error) {
	sb, ok := s[id]
	if !ok {
		return Sidebar{}, fmt.Errorf("%w: %s", ErrUnknownSidebar, id)
	}
	return sb, nil
}

// DocIDs lists the docs of the sidebar in reading order.
func (s Sidebar) DocIDs() []string {
	var ids []string
	var walk func(items []SidebarItem)
	walk = func(items []SidebarItem) {
		for _, item := range items {
			if item.IsCategory() {
				walk(item.Items)
				continue
			}
			ids = append(ids, item.DocID)
		}
	}
	walk(s.Items)
	return ids
}

// FirstDoc returns the id of the first doc in reading order.
func (s Sidebar) FirstDoc() (string, bool) {
	ids := s.DocIDs()
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// Neighbors returns the docs before and after id in reading order.
func (s Sidebar) Neighbors(id string) (prev, next string) {
	ids := s.DocIDs()
	for i, docID := range ids {
		if docID != id {
			continue
		}
		if i > 0 {
			prev = ids[i-1]
		}
		if i < len(ids)-1 {
			next = ids[i+1]
		}
		return prev, next
	}
	return "", ""
}

type node struct {
	item     SidebarItem
	position float64
	hasPos   bool
	key      string
}

// Autogenerate builds a sidebar from the directory layout of the docs.
// Top-level docs become links, subdirectories become categories. Items are
// ordered by sidebar_position, then by id. Categories have no position and
// follow the positioned docs.
func Autogenerate(id string, docs []Doc) Sidebar {
	return Sidebar{ID: id, Items: build("", docs)}
}

func build(dir string, docs []Doc) []SidebarItem {
	var nodes []node
	categories := map[string][]Doc{}

	for _, doc := range docs {
		rel := doc.ID
		if dir != "" {
			if !strings.HasPrefix(rel, dir+"/") {
				continue
			}
			rel = strings.TrimPrefix(rel, dir+"/")
		}

		if i := strings.Index(rel, "/"); i >= 0 {
			sub := rel[:i]
			categories[sub] = append(categories[sub], doc)
			continue
		}

		nodes = append(nodes, node{
			item:     SidebarItem{Label: doc.Label(), DocID: doc.ID},
			position: doc.Position,
			hasPos:   doc.HasPosition,
			key:      doc.ID,
		})
	}

	for sub, children := range categories {
		full := path.Join(dir, sub)
		n := node{
			item: SidebarItem{
				Label: core.HumanizeID(sub),
				Items: build(full, children),
			},
			key: full,
		}
		nodes = append(nodes, n)
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.hasPos != b.hasPos {
			return a.hasPos
		}
		if a.hasPos && a.position != b.position {
			return a.position < b.position
		}
		return a.key < b.key
	})

	items := make([]SidebarItem, len(nodes))
	for i, n := range nodes {
		items[i] = n.item
	}
	return items
}
