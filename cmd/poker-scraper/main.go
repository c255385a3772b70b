// Package main is the entry point for the poker-results-scraper application
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/myusername/poker-results-scraper/internal/config"
	"github.com/myusername/poker-results-scraper/internal/logging"
	"github.com/myusername/poker-results-scraper/internal/server"
	"github.com/myusername/poker-results-scraper/internal/utils"
	"github.com/myusername/poker-results-scraper/pkg/parser"
	"github.com/myusername/poker-results-scraper/pkg/scraper"
	"github.com/myusername/poker-results-scraper/pkg/stats"
)

// Version is set during build using ldflags
var version = "dev"

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configFlag := flag.String("config", "", "Path to YAML config file")
	urlFlag := flag.String("url", "", "Profile URL for one-shot mode; prints the report and exits")
	jsonFlag := flag.Bool("json", false, "One-shot mode: print the raw JSON report instead of a table")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("poker-results-scraper version %s\n", version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	logger.Info("poker results scraper starting", slog.String("version", version))

	if *urlFlag != "" {
		if err := runOnce(cfg, *urlFlag, *jsonFlag); err != nil {
			logger.Error("scrape failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	srv := server.New(cfg, logger, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

// runOnce fetches a single profile and writes the report to stdout.
func runOnce(cfg *config.Config, url string, asJSON bool) error {
	fetcher := scraper.New(scraper.Options{
		Timeout:          cfg.Scraper.Timeout,
		RenderJavaScript: cfg.Scraper.RenderJavaScript,
		UserAgent:        cfg.Scraper.UserAgent,
	})

	html, err := fetcher.Fetch(context.Background(), url)
	if err != nil {
		return err
	}

	name, rows, err := parser.ExtractProfile(html)
	if err != nil {
		return err
	}

	report := stats.Run(name, rows, stats.Options{
		RequireAnyPrizeCell: cfg.Stats.RequireAnyPrizeCell,
	})

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	utils.DisplayPlayerReport(report)
	return nil
}
