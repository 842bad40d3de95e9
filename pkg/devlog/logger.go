// Package devlog prints ANSI-colored lines and boxes for development builds.
// Output is suppressed unless logging is enabled and the injected mode
// predicate reports development mode.
package devlog

import (
	"log/slog"
	"strings"
	"sync/atomic"
)

// ModeFunc reports whether the host process runs in development mode. It is
// supplied by the embedding application; a nil ModeFunc counts as production.
type ModeFunc func() bool

// Development always reports development mode.
func Development() ModeFunc { return func() bool { return true } }

// Production never reports development mode.
func Production() ModeFunc { return func() bool { return false } }

type Config struct {
	LoggingEnabled bool
	ANSIEnabled    bool
	Padding        int
	Rule           string
	Titles         bool
}

func DefaultConfig() Config {
	return Config{
		LoggingEnabled: true,
		ANSIEnabled:    true,
		Padding:        DefaultPadding,
		Rule:           DefaultRule,
	}
}

// Logger prints colored lines and boxes to a Sink. The two flags may be
// flipped from any goroutine; each call reads them once before emitting.
type Logger struct {
	logging atomic.Bool
	ansi    atomic.Bool
	padding int
	rule    string
	titles  bool
	mode    ModeFunc
	sink    Sink
}

type LoggerOption func(*Logger)

// WithSink replaces the default console sink.
func WithSink(s Sink) LoggerOption {
	return func(l *Logger) {
		if s != nil {
			l.sink = s
		}
	}
}

func New(cfg Config, mode ModeFunc, opts ...LoggerOption) *Logger {
	l := &Logger{
		padding: cfg.Padding,
		rule:    cfg.Rule,
		titles:  cfg.Titles,
		mode:    mode,
	}
	l.logging.Store(cfg.LoggingEnabled)
	l.ansi.Store(cfg.ANSIEnabled)
	for _, opt := range opts {
		opt(l)
	}
	if l.sink == nil {
		l.sink = NewConsoleSink(nil)
	}
	return l
}

func (l *Logger) SetLoggingEnabled(v bool) { l.logging.Store(v) }
func (l *Logger) SetANSIEnabled(v bool)    { l.ansi.Store(v) }
func (l *Logger) LoggingEnabled() bool     { return l.logging.Load() }
func (l *Logger) ANSIEnabled() bool        { return l.ansi.Load() }

// Colorize wraps text using the logger's current ANSI setting. It prints
// nothing and ignores the logging and mode gates.
func (l *Logger) Colorize(text string, code Code) string {
	return Wrap(text, code, l.ansi.Load())
}

// active reports whether output is allowed right now.
func (l *Logger) active() bool {
	return l.logging.Load() && l.mode != nil && l.mode()
}

// Print writes text as a single colored line.
func (l *Logger) Print(code Code, text string, opts ...Option) {
	if !l.active() {
		return
	}
	o := resolve(callOptions{level: slog.LevelInfo}, opts)
	l.sink.Emit(Record{
		Name:  o.name,
		Level: o.level,
		Lines: []string{Wrap(text, code, l.ansi.Load())},
		Err:   o.err,
		Trace: o.trace,
	})
}

func (l *Logger) Red(text string, opts ...Option)          { l.Print(Red, text, opts...) }
func (l *Logger) Green(text string, opts ...Option)        { l.Print(Green, text, opts...) }
func (l *Logger) Yellow(text string, opts ...Option)       { l.Print(Yellow, text, opts...) }
func (l *Logger) Blue(text string, opts ...Option)         { l.Print(Blue, text, opts...) }
func (l *Logger) Purple(text string, opts ...Option)       { l.Print(Purple, text, opts...) }
func (l *Logger) Cyan(text string, opts ...Option)         { l.Print(Cyan, text, opts...) }
func (l *Logger) White(text string, opts ...Option)        { l.Print(White, text, opts...) }
func (l *Logger) BrightRed(text string, opts ...Option)    { l.Print(BrightRed, text, opts...) }
func (l *Logger) BrightGreen(text string, opts ...Option)  { l.Print(BrightGreen, text, opts...) }
func (l *Logger) BrightYellow(text string, opts ...Option) { l.Print(BrightYellow, text, opts...) }
func (l *Logger) BrightBlue(text string, opts ...Option)   { l.Print(BrightBlue, text, opts...) }
func (l *Logger) BrightPurple(text string, opts ...Option) { l.Print(BrightPurple, text, opts...) }
func (l *Logger) BrightCyan(text string, opts ...Option)   { l.Print(BrightCyan, text, opts...) }

// Box renders text inside a bordered box colored with code.
func (l *Logger) Box(code Code, text string, opts ...Option) {
	l.box(Category{Code: code, Name: "Log", Level: slog.LevelInfo}, text, opts)
}

func (l *Logger) Success(text string, opts ...Option) { l.box(CategorySuccess, text, opts) }
func (l *Logger) Error(text string, opts ...Option)   { l.box(CategoryError, text, opts) }
func (l *Logger) Warning(text string, opts ...Option) { l.box(CategoryWarning, text, opts) }
func (l *Logger) Info(text string, opts ...Option)    { l.box(CategoryInfo, text, opts) }
func (l *Logger) Debug(text string, opts ...Option)   { l.box(CategoryDebug, text, opts) }
func (l *Logger) Custom(text string, opts ...Option)  { l.box(CategoryCustom, text, opts) }

func (l *Logger) box(cat Category, text string, opts []Option) {
	if !l.active() {
		return
	}
	ansi := l.ansi.Load()
	o := resolve(callOptions{
		name:    cat.Name,
		level:   cat.Level,
		padding: l.padding,
		titles:  l.titles,
	}, opts)

	bo := BoxOptions{Padding: o.padding, Rule: l.rule}
	if o.titles {
		bo.Title = strings.ToUpper(o.name)
	}
	lines := RenderBox(text, bo)
	if len(lines) == 0 {
		return
	}
	for i, line := range lines {
		lines[i] = Wrap(line, cat.Code, ansi)
	}
	l.sink.Emit(Record{
		Name:  o.name,
		Level: o.level,
		Lines: lines,
		Err:   o.err,
		Trace: o.trace,
	})
}
