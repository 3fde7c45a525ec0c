package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pipeguru/docsite"
	"github.com/pipeguru/docsite/internal/adapters/cli"
	"github.com/pipeguru/docsite/internal/config"
	"github.com/pipeguru/docsite/internal/platform/logger"
)

func main() {
	os.Exit(run(os.Args[1:], cli.NewOutput()))
}

func run(args []string, output *cli.Output) int {
	output.PrintHeader("Pipeguru Docs Build")

	flags := flag.NewFlagSet("docs-build", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	outDir := flags.String("out", "", "output directory (overrides build.out_dir)")
	contentDir := flags.String("content", "", "read docs and static files from this directory instead of the embedded copy")
	keep := flags.Bool("keep", false, "keep the output directory and only rewrite files that changed")
	list := flags.Bool("list", false, "print every written file")
	strict := flags.Bool("strict", false, "fail the build when it reports warnings")
	noColor := flags.Bool("no-color", false, "disable colored output")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *noColor {
		output.DisableColors()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		output.PrintError("%v", err)
		return 1
	}
	if *outDir != "" {
		cfg.Build.OutDir = *outDir
	}
	if *keep {
		cfg.Build.Clean = false
	}

	log, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		output.PrintError("%v", err)
		return 1
	}

	opts := []docsite.Option{docsite.WithLogger(log)}
	if *contentDir != "" {
		opts = append(opts, docsite.WithContentDir(*contentDir))
	}

	site, err := docsite.New(cfg, opts...)
	if err != nil {
		output.PrintError("%v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	output.PrintStep("Building %d pages into %s", len(site.Routes()), cfg.Build.OutDir)

	report := cli.NewBuildReport(output, cfg.Build.OutDir)
	result := site.Build(ctx, report)
	report.Render()

	if result.Error != nil {
		output.PrintError("%v", result.Error)
		return 1
	}
	if report.HasFailures() {
		output.PrintError("build reported errors")
		return 1
	}

	if *list {
		for _, file := range result.Files {
			output.PrintFile(file)
		}
	}
	output.PrintSuccess("%d files written, %d unchanged", len(result.Files), len(result.Unchanged))

	if warnings := report.Warnings(); len(warnings) > 0 {
		output.PrintWarning("%d pages have warnings", len(warnings))
		if *strict {
			return 1
		}
	}

	output.PrintDone("Build completed successfully")
	return 0
}
