package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestReport() (*BuildReport, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	report := NewBuildReport(NewOutputTo(&out, &errOut), "build")

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	report.startTime = now
	report.now = func() time.Time {
		now = now.Add(100 * time.Millisecond)
		return now
	}
	return report, &out, &errOut
}

func TestBuildReportMinimal(t *testing.T) {
	report, out, _ := newTestReport()
	report.SetPageCount(5)
	report.Track("Render pages")(nil)
	report.Render()

	got := out.String()
	for _, want := range []string{"5 pages rendered", "Build complete in", "Output: build"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if report.HasFailures() {
		t.Error("HasFailures() = true, want false")
	}
}

func TestBuildReportWarnings(t *testing.T) {
	report, out, _ := newTestReport()
	report.Track("Check links")(nil)
	report.AddWarning("/docs/intro", "Broken links", []string{"/docs/missing", "/docs/missing", "/docs/gone"})
	report.Render()

	got := out.String()
	for _, want := range []string{"Warnings (1):", "/docs/intro", "/docs/missing (2 occurrences)", "/docs/gone"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if report.HasFailures() {
		t.Error("warnings must not fail the build")
	}
	if len(report.Warnings()) != 1 {
		t.Errorf("Warnings() = %d, want 1", len(report.Warnings()))
	}
}

func TestBuildReportFailure(t *testing.T) {
	report, out, errOut := newTestReport()
	report.Track("Write files")(errors.New("disk full"))
	report.AddError("/docs/intro", "Broken links", []string{"/docs/missing"})
	report.Render()

	if !report.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if !strings.Contains(out.String(), "✗ Write files") {
		t.Errorf("failed step not listed:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "Build failed after") {
		t.Errorf("missing failure summary:\n%s", errOut.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
