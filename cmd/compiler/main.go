package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-job-compiler/internal/compile"
	"go-job-compiler/internal/config"
	"go-job-compiler/internal/reporter"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config")
	inputDir := flag.String("input", "", "directory holding job result files (overrides config)")
	outputDir := flag.String("out", "", "directory for compiled reports (overrides config)")
	flag.Parse()

	//load config
	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	//stop extras on Ctrl+C, reports already written stay
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := compile.New(cfg, logger).Run(ctx)
	switch {
	case errors.Is(err, compile.ErrNoInput):
		fmt.Printf("No job result files found in '%s' directory.\n", cfg.InputDir)
		fmt.Println("Please run the scrapers first to generate job results.")
		return
	case errors.Is(err, compile.ErrWriteReport):
		fmt.Printf("❌ Error saving compiled results: %v\n", err)
		notifyFailure(cfg, err)
		return
	case err != nil:
		fmt.Printf("❌ Compilation failed: %v\n", err)
		return
	}

	fmt.Println("\n=== Compilation Complete ===")
	fmt.Printf("📁 Files: processed %d, skipped %d\n", res.FilesProcessed, res.FilesSkipped)
	fmt.Printf("🔍 Total jobs found: %d\n", res.TotalExtracted)
	fmt.Printf("🗑️  Duplicates removed: %d\n", res.Summary.DuplicatesRemoved)
	fmt.Printf("✨ Unique jobs: %d\n", res.Summary.Unique)
	fmt.Printf("🏢 Platforms: %d\n", len(res.Summary.Platforms))
	for _, p := range res.Saved.Paths {
		fmt.Printf("📄 %s\n", p)
	}
	for _, w := range res.Warnings {
		fmt.Printf("⚠️  %s\n", w)
	}
}

func notifyFailure(cfg *config.Config, runErr error) {
	if !cfg.TelegramEnabled() {
		return
	}
	tr, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Printf("⚠️ Telegram unavailable: %v", err)
		return
	}
	if err := tr.SendError(runErr); err != nil {
		log.Printf("⚠️ Failed to send Telegram error: %v", err)
	}
}
