package docs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

var ErrUnknownTheme = errors.New("unknown highlight theme")

const darkScope = "[data-theme='dark'] "

// HighlightCSS returns the stylesheet for highlighted code blocks. Rules for
// the dark theme only apply below an element with data-theme="dark".
func HighlightCSS(light, dark string) ([]byte, error) {
	lightStyle, err := lookupStyle(light)
	if err != nil {
		return nil, err
	}
	darkStyle, err := lookupStyle(dark)
	if err != nil {
		return nil, err
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var out bytes.Buffer
	fmt.Fprintf(&out, "/* %s */\n", lightStyle.Name)
	if err := formatter.WriteCSS(&out, lightStyle); err != nil {
		return nil, fmt.Errorf("failed to write %s css: %w", light, err)
	}

	var darkCSS bytes.Buffer
	if err := formatter.WriteCSS(&darkCSS, darkStyle); err != nil {
		return nil, fmt.Errorf("failed to write %s css: %w", dark, err)
	}
	fmt.Fprintf(&out, "/* %s */\n", darkStyle.Name)
	scanner := bufio.NewScanner(&darkCSS)
	for scanner.Scan() {
		out.WriteString(scopeRule(scanner.Text(), darkScope))
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func lookupStyle(name string) (*chroma.Style, error) {
	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return style, nil
}

func scopeRule(line, scope string) string {
	if i := strings.Index(line, "*/ "); i >= 0 {
		return line[:i+3] + scope + line[i+3:]
	}
	if strings.HasPrefix(line, ".") {
		return scope + line
	}
	return line
}
