// Package flags provides urfave/cli flag helpers for verbosity counting
// and timestamp arguments.
package flags

import (
	"github.com/urfave/cli/v3"

	"github.com/cli-helpers/cli-helpers-go/timestamp"
)

// VerboseFlag returns a repeatable -v/--verbose flag. Each occurrence
// increments *count; the total maps to a log level via logging.Verbosity.
func VerboseFlag(count *int) cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Increase logging verbosity (repeatable)",
		Config:  cli.BoolConfig{Count: count},
	}
}

// TimestampFlag returns a string flag meant to hold a timestamp in any of
// the recognized representations (epoch seconds, epoch milliseconds, or an
// en_US `date` calendar string).
func TimestampFlag(name, usage string) cli.Flag {
	return &cli.StringFlag{
		Name:  name,
		Usage: usage,
	}
}

// Timestamp reads the named string flag from cmd and normalizes it.
// The raw flag text is handed to the parser verbatim.
func Timestamp(cmd *cli.Command, name string) (timestamp.Timestamp, error) {
	return timestamp.Parse(cmd.String(name))
}
