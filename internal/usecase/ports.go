package usecase

import (
	"github.com/pipeguru/docsite/internal/adapters/fs"
)

type FileSystem = fs.FileSystem

// BuildReporter collects what happened during a build for the CLI.
type BuildReporter interface {
	SetPageCount(count int)
	Track(name string) func(err error)
	AddWarning(page string, message string, details []string)
	AddError(page string, message string, details []string)
}

type nopReporter struct{}

func (nopReporter) SetPageCount(int) {}
func (nopReporter) Track(string) func(error) { return func(error) {} }
func (nopReporter) AddWarning(string, string, []string) {}
func (nopReporter) AddError(string, string, []string) {}
