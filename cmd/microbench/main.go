// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Microbench compares the performance of alternative implementations
// of the same computation and reports the relative slowdown of each
// candidate against the fastest.
//
// Usage:
//
//	microbench list
//	microbench run [--reps n] [--stat mean|median] [--on-error record|abort]
//	               [--format text|csv|html|bench] [--plot file.png]
//	               [--db dsn [--db-driver sqlite3|mysql]] suite
//
// Candidates come from built-in suites of named computations over
// fixed inputs; "microbench list" enumerates them. The process exits
// 0 on success and non-zero if the run fails, including when every
// candidate fails every replication.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	// Database drivers for --db.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"golang.org/x/microbench/benchdb"
	"golang.org/x/microbench/benchmath"
	"golang.org/x/microbench/benchplot"
	"golang.org/x/microbench/benchrun"
	"golang.org/x/microbench/benchtab"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "microbench",
		Short: "Compare alternative implementations of the same computation",
		Long: `Microbench times named candidate computations over identical input,
ranks them by a summary statistic over repeated replications, and reports
each candidate's slowdown relative to the fastest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in candidate suites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range suites {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s.name, s.description)
			}
			return nil
		},
	}
}

type runConfig struct {
	reps       int
	stat       string
	onError    string
	confidence float64
	format     string
	plotPath   string
	dbDSN      string
	dbDriver   string
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "run suite",
		Short: "Run one built-in suite and report the comparison",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, logger, args[0], cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.reps, "reps", 100,
		"Number of replications per candidate")
	flags.StringVar(&cfg.stat, "stat", "mean",
		"Summary statistic: mean or median")
	flags.StringVar(&cfg.onError, "on-error", "record",
		"Candidate failure policy: record or abort")
	flags.Float64Var(&cfg.confidence, "confidence", benchrun.DefaultConfidence,
		"Confidence level for summary intervals")
	flags.StringVar(&cfg.format, "format", "text",
		"Output format: text, csv, html, or bench")
	flags.StringVar(&cfg.plotPath, "plot", "",
		"Write a PNG bar chart of relative slowdown to this path")
	flags.StringVar(&cfg.dbDSN, "db", "",
		"Store the run in this database (data source name)")
	flags.StringVar(&cfg.dbDriver, "db-driver", "sqlite3",
		"Database driver for --db: sqlite3 or mysql")

	return cmd
}

func runSuite(cmd *cobra.Command, logger *slog.Logger, suiteName string, cfg runConfig) error {
	st, err := findSuite(suiteName)
	if err != nil {
		return err
	}

	var stat benchmath.Statistic
	switch cfg.stat {
	case "mean":
		stat = benchmath.Mean
	case "median":
		stat = benchmath.Median
	default:
		return fmt.Errorf("unknown statistic %q", cfg.stat)
	}

	policy, err := benchrun.ParseFailurePolicy(cfg.onError)
	if err != nil {
		return err
	}

	reg := benchrun.NewRegistry()
	if err := st.register(reg); err != nil {
		return err
	}

	logger.Info("starting comparison",
		slog.String("suite", st.name),
		slog.Int("candidates", reg.Len()),
		slog.Int("replications", cfg.reps),
		slog.String("statistic", cfg.stat),
		slog.String("on_error", policy.String()),
	)

	// Drive Repeat directly so the raw measurement sets stay
	// available for the bench output format.
	var sets []benchrun.MeasurementSet
	for _, c := range reg.Candidates() {
		set, err := benchrun.Repeat(c, cfg.reps, policy)
		if err != nil {
			return err
		}
		sets = append(sets, set)
	}
	rep, err := benchrun.NewReport(sets, stat, cfg.confidence)
	if err != nil {
		if errors.Is(err, benchrun.ErrNoSuccessfulCandidates) {
			return fmt.Errorf("suite %s: %w", st.name, err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	table := benchtab.New(rep)
	switch cfg.format {
	case "text":
		err = table.ToText(out)
	case "csv":
		err = table.ToCSV(out)
	case "html":
		err = table.WriteHTML(out)
	case "bench":
		err = benchtab.WriteBenchFormat(out, sets)
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}
	if err != nil {
		return err
	}

	if cfg.plotPath != "" {
		if err := benchplot.SavePNG(rep, cfg.plotPath); err != nil {
			return fmt.Errorf("write plot: %w", err)
		}
		logger.Info("wrote plot", slog.String("path", cfg.plotPath))
	}

	if cfg.dbDSN != "" {
		db, err := benchdb.OpenSQL(cfg.dbDriver, cfg.dbDSN)
		if err != nil {
			return fmt.Errorf("open history db: %w", err)
		}
		defer db.Close()
		runID, err := db.SaveReport(cmd.Context(), cfg.reps, rep)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.Info("stored run", slog.Int64("run_id", runID))
	}

	return nil
}
