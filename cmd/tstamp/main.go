// Package main is the entry point for the tstamp CLI.
//
// tstamp normalizes heterogeneous timestamp representations — epoch
// seconds, epoch milliseconds, or the en_US output of date(1) — to
// RFC3339 UTC instants.
//
// Usage:
//
//	tstamp [-v...] [--output json|default] [--config FILE] TIMESTAMP...
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/cli-helpers/cli-helpers-go/errors"
	"github.com/cli-helpers/cli-helpers-go/flags"
	"github.com/cli-helpers/cli-helpers-go/internal/output"
	"github.com/cli-helpers/cli-helpers-go/logging"
	"github.com/cli-helpers/cli-helpers-go/timestamp"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// newCommand builds the tstamp CLI command.
func newCommand() *cli.Command {
	var verboseCount int
	return &cli.Command{
		Name:    "tstamp",
		Usage:   "Normalize epoch or date(1) timestamps to RFC3339 UTC",
		Version: Version,
		Flags: []cli.Flag{
			flags.VerboseFlag(&verboseCount),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"format"},
				Value:   "default",
				Usage:   "Output format: json or default",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML file with default output format and verbosity",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return run(cmd, verboseCount)
		},
	}
}

// run executes the command after flag parsing.
func run(cmd *cli.Command, verbose int) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if verbose == 0 {
		verbose = cfg.Verbose
	}
	if err := logging.New(verbose).Init(); err != nil {
		return err
	}

	formatValue := cmd.String("output")
	if !cmd.IsSet("output") && cfg.Output != "" {
		formatValue = cfg.Output
	}
	format := output.ParseFormat(formatValue)

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("at least one timestamp argument is required")
	}

	results := make([]output.Result, 0, len(args))
	var firstErr error
	for _, arg := range args {
		ts, err := timestamp.Parse(arg)
		if err != nil {
			log.Error().Str("input", arg).Msg("failed to parse timestamp")
			results = append(results, output.Result{Input: arg, Error: err.Error()})
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		log.Debug().Str("input", arg).Str("utc", ts.String()).Msg("parsed timestamp")
		results = append(results, output.Result{
			Input:        arg,
			Success:      true,
			UTC:          ts.String(),
			EpochSeconds: ts.Unix(),
			EpochMillis:  ts.UnixMilli(),
		})
	}

	if err := output.Render(os.Stdout, format, results); err != nil {
		return err
	}
	return firstErr
}

// exitCode maps an error to the process exit code: logger initialization
// failures are distinguishable from parse failures.
func exitCode(err error) int {
	if errors.IsLogger(err) {
		return 2
	}
	return 1
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("error:"), err)
		os.Exit(exitCode(err))
	}
}
