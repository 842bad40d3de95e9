package devlog

import "log/slog"

type callOptions struct {
	name    string
	level   slog.Level
	padding int
	titles  bool
	err     error
	trace   string
}

// Option adjusts a single logging call.
type Option func(*callOptions)

// WithName overrides the tag reported with the record and used as box title.
func WithName(name string) Option {
	return func(o *callOptions) { o.name = name }
}

func WithLevel(level slog.Level) Option {
	return func(o *callOptions) { o.level = level }
}

// WithPadding sets the horizontal padding of a box. Ignored by plain prints.
func WithPadding(n int) Option {
	return func(o *callOptions) { o.padding = n }
}

// WithTitle toggles the title row of a box. Ignored by plain prints.
func WithTitle(on bool) Option {
	return func(o *callOptions) { o.titles = on }
}

// WithError attaches err for display on the last line. It is never inspected.
func WithError(err error) Option {
	return func(o *callOptions) { o.err = err }
}

func WithTrace(trace string) Option {
	return func(o *callOptions) { o.trace = trace }
}

func resolve(base callOptions, opts []Option) callOptions {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	return base
}
