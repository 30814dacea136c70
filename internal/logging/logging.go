// Package logging builds the logr.Logger used by nextcron.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Name is the root logger name.
const Name = "nextcron"

// New returns a console logger writing to stderr at the given level
// (debug, info, warn, error). logr V(1) maps to zap's debug level.
func New(level string) (logr.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return logr.Discard(), errors.Wrapf(err, "log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	sink, err := cfg.Build()
	if err != nil {
		return logr.Discard(), errors.Wrap(err, "building logger")
	}
	return zapr.NewLogger(sink).WithName(Name), nil
}
