// Package main provides the csv2json command-line tool for turning a CSV export into a JSON array.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"moviedata/internal/config"
	"moviedata/internal/dataset"
	"moviedata/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one conversion and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("csv2json", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML config (default "+config.DefaultConfigPath+" when present)")
	inputPath := fs.String("input", "", "Path to CSV file with a header row")
	outputPath := fs.String("output", "", "Path to output JSON file")
	delimiter := fs.String("delimiter", "", "Field delimiter (single character)")
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
			cfg.Converter.Input = *inputPath
		case "output":
			cfg.Converter.Output = *outputPath
		case "delimiter":
			cfg.Converter.Delimiter = *delimiter
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		bootLog.Error("❌ Invalid configuration", "error", err)
		return 1
	}

	log := logger.NewLoggerWithWriter(cfg.Logging.Level, stderr).With("cmd", "csv2json")

	count, err := convert(&cfg.Converter, cfg.Output.Indent, log)
	if err != nil {
		log.Error("❌ Conversion failed", "error", err)
		return 1
	}

	fmt.Fprintf(stdout, "Converted %s to %s with %d records.\n", cfg.Converter.Input, cfg.Converter.Output, count)

	return 0
}

func convert(cc *config.ConverterConfig, indent int, log *logger.Logger) (int, error) {
	f, err := os.Open(cc.Input)
	if err != nil {
		return 0, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	table, err := dataset.ReadCSV(f, dataset.Dialect{
		Delimiter: cc.DelimiterRune(),
		Comment:   cc.CommentRune(),
	})
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", cc.Input, err)
	}

	log.Info("📂 Read CSV", "input", cc.Input, "columns", len(table.Header), "rows", len(table.Rows))

	if table.SurplusCells > 0 {
		log.Warn("⚠️  Dropped cells beyond the header width", "cells", table.SurplusCells)
	}

	rows := table.Rows
	if rows == nil {
		rows = []dataset.Row{}
	}

	if err := dataset.WriteJSON(cc.Output, rows, indent); err != nil {
		return 0, fmt.Errorf("writing %s: %w", cc.Output, err)
	}

	return len(rows), nil
}
