package docs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pipeguru/docsite/internal/core"
)

// Doc is one rendered Markdown document.
type Doc struct {
	ID           string
	Source       string
	Slug         string
	Title        string
	SidebarLabel string
	Position     float64
	HasPosition  bool
	Description  string
	HTML         string

	// HasTitleHeading is set when the body already starts with the title
	// as a level one heading.
	HasTitleHeading bool
}

// Route returns the part of the doc route below the docs base path.
func (d Doc) Route() string {
	if d.Slug != "" {
		return strings.TrimPrefix(d.Slug, "/")
	}
	return d.ID
}

func (d Doc) Label() string {
	if d.SidebarLabel != "" {
		return d.SidebarLabel
	}
	return d.Title
}

// Load reads every .md file below dir in fsys, in lexical order.
func Load(fsys fs.FS, dir string, md *Markdown) ([]Doc, error) {
	var docs []Doc

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), "_") {
				return fs.SkipDir
			}
			return nil
		}
		if !isMarkdown(p) || strings.HasPrefix(d.Name(), "_") {
			return nil
		}

		source, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, dir), "/")
		doc, err := Parse(rel, source, md)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load docs from %s: %w", dir, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Parse renders a single document. rel is its path inside the docs directory.
func Parse(rel string, source []byte, md *Markdown) (Doc, error) {
	out, err := md.render(source)
	if err != nil {
		return Doc{}, fmt.Errorf("%s: %w", rel, err)
	}

	doc := Doc{
		ID:     core.DocIDForPath(rel),
		Source: rel,
		HTML:   out.HTML,
	}

	fm := out.FrontMatter
	doc.Title = stringField(fm, "title")
	doc.SidebarLabel = stringField(fm, "sidebar_label")
	doc.Description = stringField(fm, "description")
	doc.Slug = stringField(fm, "slug")
	if id := stringField(fm, "id"); id != "" {
		doc.ID = path.Join(path.Dir(doc.ID), id)
	}
	doc.Position, doc.HasPosition = numberField(fm, "sidebar_position")

	switch {
	case doc.Title == "" && out.Heading != "":
		doc.Title = out.Heading
		doc.HasTitleHeading = true
	case doc.Title == "":
		doc.Title = core.HumanizeID(doc.ID)
	default:
		doc.HasTitleHeading = out.Heading == doc.Title
	}

	return doc, nil
}

func isMarkdown(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext == ".md" || ext == ".mdx"
}

func stringField(fm map[string]any, key string) string {
	if v, ok := fm[key]; ok && v != nil {
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return ""
}

func numberField(fm map[string]any, key string) (float64, bool) {
	switch v := fm[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// Collection is the loaded docs of a site together with their sidebars.
type Collection struct {
	Docs     []Doc
	Sidebars Sidebars
	byID     map[string]int
}

func NewCollection(sidebarID string, docs []Doc) *Collection {
	c := &Collection{
		Docs:     docs,
		Sidebars: Sidebars{sidebarID: Autogenerate(sidebarID, docs)},
		byID:     make(map[string]int, len(docs)),
	}
	for i, doc := range docs {
		c.byID[doc.ID] = i
	}
	return c
}

func (c *Collection) ByID(id string) (Doc, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Doc{}, false
	}
	return c.Docs[i], true
}
