package devlog

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// Record is one logging call after gating and coloring. Lines are final; a
// sink must not rewrite them.
type Record struct {
	Name  string
	Level slog.Level
	Lines []string
	Err   error
	Trace string
}

// Sink receives whole records. A record is never split across calls.
type Sink interface {
	Emit(rec Record)
}

// ConsoleSink writes records as plain lines.
type ConsoleSink struct {
	w io.Writer
}

// NewConsoleSink returns a sink writing to w, or to color.Output (stdout with
// Windows escape translation) when w is nil.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = color.Output
	}
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Emit(rec Record) {
	if len(rec.Lines) == 0 {
		return
	}
	var b strings.Builder
	last := len(rec.Lines) - 1
	for i, line := range rec.Lines {
		b.WriteString(line)
		if i == last && rec.Err != nil {
			b.WriteString("  error: ")
			b.WriteString(rec.Err.Error())
		}
		b.WriteByte('\n')
	}
	if rec.Trace != "" {
		b.WriteString(strings.TrimRight(rec.Trace, "\n"))
		b.WriteByte('\n')
	}
	// Write errors on a console have nowhere to go.
	_, _ = s.w.Write([]byte(b.String()))
}

// SlogSink forwards each line as its own slog record, the way a developer
// log sink receives messages.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Emit(rec Record) {
	ctx := context.Background()
	last := len(rec.Lines) - 1
	for i, line := range rec.Lines {
		attrs := []slog.Attr{slog.String("name", rec.Name)}
		if i == last {
			if rec.Err != nil {
				attrs = append(attrs, slog.String("error", rec.Err.Error()))
			}
			if rec.Trace != "" {
				attrs = append(attrs, slog.String("trace", rec.Trace))
			}
		}
		s.logger.LogAttrs(ctx, rec.Level, line, attrs...)
	}
}
