// Package main provides the normalizer command-line tool for cleaning raw movie metadata.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"moviedata/internal/config"
	"moviedata/internal/dataset"
	"moviedata/internal/formatter"
	"moviedata/internal/logger"
	"moviedata/internal/normalizer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

// run executes one normalization and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	fs := flag.NewFlagSet("normalizer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML config (default "+config.DefaultConfigPath+" when present)")
	inputPath := fs.String("input", "", "Path to raw movies file (.json, .csv or .tsv)")
	outputPath := fs.String("output", "", "Path to output JSON file")
	posterBaseURL := fs.String("poster-base-url", "", "Image host prefix for poster paths")
	preview := fs.Bool("preview", false, "Print a preview table of the normalized movies")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	bootLog := logger.NewLoggerWithWriter("info", stderr)

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		bootLog.Error("❌ Loading config failed", "error", err)
		return 1
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Normalizer.Input = *inputPath
		case "output":
			cfg.Normalizer.Output = *outputPath
		case "poster-base-url":
			cfg.Normalizer.PosterBaseURL = *posterBaseURL
		case "preview":
			cfg.Features.EnableNormalizationPreview = *preview
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		bootLog.Error("❌ Invalid configuration", "error", err)
		return 1
	}

	log := logger.NewLoggerWithWriter(cfg.Logging.Level, stderr).With("cmd", "normalizer")

	count, err := normalize(cfg, log, stdout, now())
	if err != nil {
		log.Error("❌ Normalization failed", "error", err)
		return 1
	}

	fmt.Fprintf(stdout, "Converted %d movies to %s\n", count, cfg.Normalizer.Output)

	return 0
}

func normalize(cfg *config.Config, log *logger.Logger, stdout io.Writer, today time.Time) (int, error) {
	start := time.Now()

	dialect := dataset.Dialect{
		Delimiter: cfg.Converter.DelimiterRune(),
		Comment:   cfg.Converter.CommentRune(),
	}

	records, err := dataset.LoadRecords(cfg.Normalizer.Input, dialect)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", cfg.Normalizer.Input, err)
	}

	log.Info("📂 Read raw movies", "input", cfg.Normalizer.Input, "records", len(records))

	processor := normalizer.NewProcessor(normalizer.Options{
		PosterBaseURL: cfg.Normalizer.PosterBaseURL,
		Today:         today,
		StripMarkup:   cfg.Normalizer.StripMarkup,
	})

	movies, err := processor.Process(records)
	if err != nil {
		return 0, err
	}

	stats := processor.Stats()
	log.Debug("Field defaults applied",
		"records", stats.Records,
		"missing_id", stats.MissingID,
		"empty_genres", stats.EmptyGenres,
		"unparsed_release", stats.UnparsedRelease,
		"default_rating", stats.DefaultRating,
		"default_duration", stats.DefaultDuration,
	)

	if cfg.Features.EnableNormalizationPreview {
		if table := formatter.FormatPreview(movies, cfg.Features.PreviewRows); table != "" {
			fmt.Fprintln(stdout, table)
		}
	}

	if err := dataset.WriteJSON(cfg.Normalizer.Output, movies, cfg.Output.Indent); err != nil {
		return 0, fmt.Errorf("writing %s: %w", cfg.Normalizer.Output, err)
	}

	log.Info("✅ Saved clean movies", "output", cfg.Normalizer.Output, "duration", time.Since(start))

	return len(movies), nil
}
