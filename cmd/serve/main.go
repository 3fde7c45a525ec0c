package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pipeguru/docsite"
	"github.com/pipeguru/docsite/internal/adapters/env"
	"github.com/pipeguru/docsite/internal/config"
	"github.com/pipeguru/docsite/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("docs-serve", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	addr := flags.String("addr", "", "listen address (overrides server.addr)")
	dev := flags.Bool("dev", env.IsDev(), "serve from -content, reload on change")
	contentDir := flags.String("content", ".", "directory holding docs/ and static/ in dev mode")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dev {
		cfg.Server.Dev = true
	}

	log, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return err
	}

	opts := []docsite.Option{docsite.WithLogger(log)}
	if cfg.Server.Dev {
		opts = append(opts, docsite.WithContentDir(*contentDir))
	}

	site, err := docsite.New(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, log, cfg, site)
}

func serve(ctx context.Context, log *slog.Logger, cfg *config.Config, site *docsite.Site) error {
	g, ctx := errgroup.WithContext(ctx)

	// Requests share ctx so open reload streams end on shutdown.
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           site.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g.Go(func() error {
		log.Info("starting server", "addr", cfg.Server.Addr, "dev", cfg.Server.Dev, "home", cfg.Site.HomePath())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	if cfg.Server.Dev {
		g.Go(func() error {
			return site.Watch(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Info("server shutdown completed")
		return nil
	})

	return g.Wait()
}
