// Package logging maps a CLI verbosity count onto a zerolog terminal
// logger writing to stderr.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cli-helpers/cli-helpers-go/errors"
)

// Verbosity is the number of times the user passed the verbose flag.
type Verbosity struct {
	count int
}

// New creates a Verbosity from a flag count.
func New(count int) Verbosity {
	return Verbosity{count: count}
}

// Count returns the raw verbosity count.
func (v Verbosity) Count() int {
	return v.count
}

// Level maps the verbosity count to a log level. Zero disables logging
// entirely; each additional occurrence enables one more level.
func (v Verbosity) Level() zerolog.Level {
	switch v.count {
	case 0:
		return zerolog.Disabled
	case 1:
		return zerolog.ErrorLevel
	case 2:
		return zerolog.WarnLevel
	case 3:
		return zerolog.InfoLevel
	case 4:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

var (
	initMu      sync.Mutex
	initialized bool
)

// Init installs a terminal logger on stderr at the verbosity's level as the
// process-global logger. The logger can be installed once per process; a
// second call fails with a logger-kind error.
func (v Verbosity) Init() error {
	return v.InitWriter(os.Stderr)
}

// InitWriter is Init with an explicit destination writer.
func (v Verbosity) InitWriter(w io.Writer) error {
	initMu.Lock()
	defer initMu.Unlock()

	if initialized {
		return errors.WrapLogger(errAlreadyInitialized)
	}

	console := zerolog.ConsoleWriter{Out: w}
	log.Logger = zerolog.New(console).Level(v.Level()).With().Timestamp().Logger()
	initialized = true
	return nil
}

// errAlreadyInitialized is the cause carried by the logger error returned
// from a repeated Init.
var errAlreadyInitialized = errors.New(errors.ErrorTypeLogger, "logger already initialized")

// reset clears the initialization guard. Test use only.
func reset() {
	initMu.Lock()
	defer initMu.Unlock()
	initialized = false
}
