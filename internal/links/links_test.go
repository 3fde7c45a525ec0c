package links

import (
	"reflect"
	"testing"

	"github.com/pipeguru/docsite/internal/core"
)

func TestExtract(t *testing.T) {
	doc := []byte(`<html><body>
<a href="/docs/intro">Intro</a>
<a name="anchor">no href</a>
<p><a href="https://github.com">GitHub</a></p>
<link href="/docs/css/custom.css">
</body></html>`)

	got, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []string{"/docs/intro", "https://github.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestChecker(t *testing.T) {
	checker := NewChecker([]string{"/docs/", "/docs/intro", "/docs/guides/rollouts", "/docs/img/logo.svg"})

	pages := map[string][]byte{
		"/docs/intro": []byte(`<a href="/docs/">home</a><a href="/docs/missing">x</a><a href="/docs/missing">again</a><a href="#top">top</a>`),
		"/docs/guides/rollouts": []byte(`<a href="../intro">intro</a><a href="first-experiment">next</a><a href="/docs/img/logo.svg">logo</a><a href="mailto:a@b.c">mail</a>`),
	}

	got, err := checker.Check(pages)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	want := []core.BrokenLink{
		{Page: "/docs/guides/rollouts", Href: "first-experiment", Target: "/docs/guides/first-experiment"},
		{Page: "/docs/intro", Href: "/docs/missing", Target: "/docs/missing"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Check() = %+v, want %+v", got, want)
	}
}

func TestCheckerExists(t *testing.T) {
	checker := NewChecker([]string{"/docs/"})

	if !checker.Exists("/docs") {
		t.Error("Exists(/docs) = false, want true")
	}
	if checker.Exists("/docs/intro") {
		t.Error("Exists(/docs/intro) = true, want false")
	}
}
