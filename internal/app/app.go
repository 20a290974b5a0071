package app

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App is the shared context handed to CLI commands.
type App struct {
	Home   string
	Config Config
	Log    *zap.Logger
}

// New loads the config under home and builds the logger. verbose forces
// debug logging regardless of the configured level.
func New(home string, verbose bool) (*App, error) {
	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log, err := NewLogger(level)
	if err != nil {
		return nil, err
	}
	return &App{Home: home, Config: cfg, Log: log}, nil
}

// NewLogger returns a console logger on stderr at the named level.
func NewLogger(level string) (*zap.Logger, error) {
	zc, err := loggerConfig(level)
	if err != nil {
		return nil, err
	}
	return zc.Build()
}

// loggerConfig is zap's production config switched to console encoding.
func loggerConfig(level string) (zap.Config, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.Config{}, errors.Wrapf(err, "log level %q", level)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	zc.Sampling = nil
	return zc, nil
}
