// Package applog wires a single zerolog.Logger for gammaray's outer
// shell, in the style of itohio-EasyRobot's pkg/logger: a console
// writer and a Unix timestamp format set once at init. There is no
// package-level logger; New builds one per caller. The core packages
// (vecmat, distrib, search, running, gammaindex) never import this
// package directly; gammaindex.Compute takes a zerolog.Logger value
// through Options.Logger instead, and never logs on the per-voxel hot
// path.
package applog

import (
	"os"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// New returns a console-writer logger at the given level, suitable for
// attaching to a gammaindex.Compute run or cmd/gammacli invocation.
func New(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// Nop returns a logger that discards everything, for callers (library
// embedders, tests) that want Compute's logging hook without any
// output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
