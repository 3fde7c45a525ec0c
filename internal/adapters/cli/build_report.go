package cli

import (
	"fmt"
	"sort"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type BuildIssue struct {
	Page    string
	Message string
	Details []string
}

type BuildReport struct {
	output      *Output
	steps       []BuildStep
	warnings    []BuildIssue
	errors      []BuildIssue
	startTime   time.Time
	pageCount   int
	outputDir   string
	hasFailures bool
	now         func() time.Time
}

func NewBuildReport(output *Output, outputDir string) *BuildReport {
	return &BuildReport{
		output:    output,
		steps:     make([]BuildStep, 0),
		warnings:  make([]BuildIssue, 0),
		errors:    make([]BuildIssue, 0),
		startTime: time.Now(),
		outputDir: outputDir,
		now:       time.Now,
	}
}

func (r *BuildReport) SetPageCount(count int) {
	r.pageCount = count
}

// Track starts a step; calling the returned function ends it.
func (r *BuildReport) Track(name string) func(err error) {
	r.steps = append(r.steps, BuildStep{
		Name:      name,
		StartTime: r.now(),
	})
	i := len(r.steps) - 1

	return func(err error) {
		step := &r.steps[i]
		step.EndTime = r.now()
		step.Success = err == nil
		if err != nil {
			step.Error = err.Error()
			r.hasFailures = true
		}
	}
}

func (r *BuildReport) AddWarning(page string, message string, details []string) {
	r.warnings = append(r.warnings, BuildIssue{
		Page:    page,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddError(page string, message string, details []string) {
	r.errors = append(r.errors, BuildIssue{
		Page:    page,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *BuildReport) Warnings() []BuildIssue {
	return r.warnings
}

func (r *BuildReport) Render() {
	duration := r.now().Sub(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *BuildReport) renderMinimal(duration time.Duration) {
	o := r.output
	fmt.Fprintf(o.out, "  "+o.Green("✓ ")+"%d pages rendered\n", r.pageCount)

	var failed []string
	for _, step := range r.steps {
		if !step.Success {
			failed = append(failed, "  "+o.Red("✗ ")+step.Name)
		}
	}

	if len(failed) == 0 {
		fmt.Fprintf(o.out, "  "+o.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))
	} else {
		fmt.Fprintln(o.out)
		fmt.Fprintln(o.out, "Failed steps:")
		for _, line := range failed {
			fmt.Fprintln(o.out, line)
		}
	}

	if r.outputDir != "" {
		fmt.Fprintf(o.out, "\n  %s\n", o.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderVerbose(duration time.Duration) {
	o := r.output
	fmt.Fprintf(o.out, "  %d pages rendered\n", r.pageCount)

	fmt.Fprintln(o.out)
	for _, step := range r.steps {
		status := o.Green("✓")
		if !step.Success {
			status = o.Red("✗")
		}
		fmt.Fprintf(o.out, "  %s %s\n", status, step.Name)
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(o.out)
		fmt.Fprintf(o.err, "  "+o.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderIssues(r.errors, o.Red("✗"))
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(o.out)
		fmt.Fprintf(o.out, "  "+o.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderIssues(r.warnings, o.Yellow("⚠"))
	}

	fmt.Fprintln(o.out)
	if r.hasFailures {
		fmt.Fprintf(o.err, "  %s\n", o.Red(fmt.Sprintf("Build failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(o.out, "  "+o.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(o.out, "\n  %s\n", o.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderIssues(issues []BuildIssue, marker string) {
	o := r.output
	for _, issue := range issues {
		fmt.Fprintf(o.out, "  %s %s\n", marker, issue.Page)
		fmt.Fprintf(o.out, "    %s\n", issue.Message)

		for _, detail := range deduplicateStrings(issue.Details) {
			fmt.Fprintf(o.out, "      • %s\n", detail)
		}
	}
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	seen := make(map[string]int)
	var order []string
	for _, item := range items {
		if seen[item] == 0 {
			order = append(order, item)
		}
		seen[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if count := seen[item]; count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}
	sort.Strings(result)
	return result
}
