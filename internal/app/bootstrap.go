package app

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/olusolaa/devlog/internal/config"
	"github.com/olusolaa/devlog/internal/errors"
	"github.com/olusolaa/devlog/internal/log"
	"github.com/olusolaa/devlog/pkg/devlog"
)

// Streams are the writers the application prints to.
type Streams struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader
	// IsTerminal reports whether Out is a terminal. Nil means "check os.Stdout".
	IsTerminal func() bool
}

func (s Streams) withDefaults() Streams {
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	if s.In == nil {
		s.In = os.Stdin
	}
	if s.IsTerminal == nil {
		s.IsTerminal = stdoutIsTerminal
	}
	return s
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// BuildApplicationFromViper loads the configuration held by v and wires the
// diagnostics logger, the sink and the devlog.Logger.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, streams Streams) (*Application, error) {
	streams = streams.withDefaults()

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	s := cfg.Settings

	logger := log.NewLogger(log.Config{Level: s.LogLevel, Format: s.LogFormat}, streams.Err)
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", s.LogLevel, s.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	ansi := resolveANSI(s.ANSI, streams.IsTerminal)
	logger.Debugf(ctx, "ANSI mode %s resolved to %t", s.ANSI, ansi)

	var sink devlog.Sink
	switch s.Sink {
	case config.SinkConsole:
		sink = devlog.NewConsoleSink(streams.Out)
	case config.SinkSlog:
		// Every record passes; the sink is not a level filter.
		sink = devlog.NewSlogSink(log.NewSlog(log.Config{Level: log.LevelDebug, Format: s.LogFormat}, streams.Out))
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation, "unsupported sink: "+s.Sink, "Supported: console, slog")
	}
	logger.WithFields(map[string]any{"component": "sink", "type": s.Sink}).Debugf(ctx, "Sink ready")

	dev := devlog.New(devlog.Config{
		LoggingEnabled: s.LoggingEnabled,
		ANSIEnabled:    ansi,
		Padding:        s.Padding,
		Rule:           s.Rule,
		Titles:         s.Titles,
	}, s.ModeFunc(), devlog.WithSink(sink))

	if s.Mode != config.ModeDevelopment {
		logger.Infof(ctx, "Mode is %s; developer output is suppressed", s.Mode)
	}
	if !s.LoggingEnabled {
		logger.Infof(ctx, "Logging disabled; developer output is suppressed")
	}

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Dev:     dev,
		streams: streams,
	}, nil
}

func resolveANSI(mode config.ANSIMode, isTerminal func() bool) bool {
	switch mode {
	case config.ANSIAlways:
		return true
	case config.ANSINever:
		return false
	default:
		// https://no-color.org
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return isTerminal()
	}
}
