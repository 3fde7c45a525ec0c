package core

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DocIDForPath derives a document id from its path inside the docs directory.
// "guides/first-experiment.md" becomes "guides/first-experiment".
func DocIDForPath(docPath string) string {
	name := strings.TrimPrefix(docPath, "./")
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimSuffix(name, path.Ext(name))
	name = strings.TrimSuffix(name, "/index")
	return name
}

// HumanizeID turns the last segment of a doc id into a readable label,
// used when a document has neither a title nor a heading.
func HumanizeID(id string) string {
	base := path.Base(id)
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	if base == "" || base == "." || base == "/" {
		return "Introduction"
	}
	r, size := utf8.DecodeRuneInString(base)
	return string(unicode.ToUpper(r)) + base[size:]
}
