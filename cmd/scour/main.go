package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/scour/internal/config"
	"github.com/crimson-sun/scour/internal/connector"
	"github.com/crimson-sun/scour/internal/engine"
	"github.com/crimson-sun/scour/internal/logging"
	"github.com/crimson-sun/scour/internal/output"
	"github.com/crimson-sun/scour/internal/output/csvfile"
	"github.com/crimson-sun/scour/internal/output/multi"
	"github.com/crimson-sun/scour/internal/output/ndjson"
	"github.com/crimson-sun/scour/internal/output/parquet"
	"github.com/crimson-sun/scour/internal/output/stdout"
	"github.com/crimson-sun/scour/internal/pipeline"

	// Register source implementations.
	_ "github.com/crimson-sun/scour/internal/connector/csvfile"
	_ "github.com/crimson-sun/scour/internal/connector/ndjsonfile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scour",
		Short:         "Clean daily inspection extracts into analysis-ready datasets",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		input       string
		inputFormat string
		outputDir   string
		outputFmts  []string
		cityList    []string
		cityCutoff  float64
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one cleaning batch: read, clean, write",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			// Flags override the environment.
			if cmd.Flags().Changed("input") {
				cfg.Source.Path = input
			}
			if cmd.Flags().Changed("input-format") {
				cfg.Source.Format = inputFormat
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.Output.Dir = outputDir
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Formats = outputFmts
			}
			if cmd.Flags().Changed("city") {
				cfg.Engine.CityCandidates = cityList
			}
			if cmd.Flags().Changed("cutoff") {
				cfg.Engine.CityCutoff = cityCutoff
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "path to the daily extract")
	cmd.Flags().StringVar(&inputFormat, "input-format", "csv", "input format: csv or ndjson")
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "directory for output files")
	cmd.Flags().StringSliceVar(&outputFmts, "output", []string{"ndjson"}, "output formats: ndjson, csv, parquet, stdout")
	cmd.Flags().StringSliceVar(&cityList, "city", nil, "city consolidation candidates")
	cmd.Flags().Float64Var(&cityCutoff, "cutoff", 0.8, "city similarity cutoff in [0, 1]")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	toStdout := false
	for _, f := range cfg.Output.Formats {
		if f == "stdout" {
			toStdout = true
		}
	}
	logging.Init(toStdout, logging.ParseLevel(cfg.Log.Level))

	out, err := buildOutput(cfg.Output)
	if err != nil {
		return err
	}

	ctor, err := connector.Get(cfg.Source.Format)
	if err != nil {
		out.Close()
		return fmt.Errorf("%w (registered: %s)", err, strings.Join(connector.Formats(), ", "))
	}

	p := pipeline.New(ctor(), engine.Default(engine.Config{
		CityCandidates: cfg.Engine.CityCandidates,
		CityCutoff:     cfg.Engine.CityCutoff,
	}), out)
	defer p.Close()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_, err = p.Run(ctx, connector.Config{Path: cfg.Source.Path, Extra: cfg.Source.Extra})
	return err
}

func buildOutput(cfg config.OutputConfig) (output.Output, error) {
	var outs []output.Output
	for _, format := range cfg.Formats {
		switch format {
		case "ndjson":
			o, err := ndjson.New(filepath.Join(cfg.Dir, "cleaned.ndjson"))
			if err != nil {
				return nil, err
			}
			outs = append(outs, o)
		case "csv":
			o, err := csvfile.New(filepath.Join(cfg.Dir, "cleaned.csv"))
			if err != nil {
				return nil, err
			}
			outs = append(outs, o)
		case "parquet":
			outs = append(outs, parquet.New(filepath.Join(cfg.Dir, "cleaned.parquet")))
		case "stdout":
			outs = append(outs, stdout.New())
		default:
			return nil, fmt.Errorf("unknown output format %q", format)
		}
	}
	if len(outs) == 1 {
		return outs[0], nil
	}
	return multi.New(outs...), nil
}
