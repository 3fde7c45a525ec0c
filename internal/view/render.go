// Package view holds the HTML components of the documentation site.
package view

import (
	"bytes"

	g "maragu.dev/gomponents"
)

// Render writes a node tree to a byte slice.
func Render(n g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
