package devlog

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultPadding = 4
	DefaultRule    = "─"
)

// BoxOptions controls the geometry of a rendered box.
type BoxOptions struct {
	Padding int
	Rule    string
	// Title, when non-empty, adds a title row and a separator under the top border.
	Title string
}

// SplitLines breaks text into lines. "\r\n" counts as a single break, a
// trailing break does not open an empty last line, and trailing whitespace is
// dropped from every line. Empty text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimRight(l, " \t\r\v\f")
	}
	return lines
}

// RenderBox returns the uncolored lines of a box around text, or nil when text
// has no lines.
func RenderBox(text string, opts BoxOptions) []string {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return nil
	}

	padding := opts.Padding
	if padding < 0 {
		padding = 0
	}
	// Only the first character of the rule counts so the border width holds.
	rule := DefaultRule
	if r, size := utf8.DecodeRuneInString(opts.Rule); size > 0 && r != utf8.RuneError {
		rule = string(r)
	}

	maxLength := 0
	for _, l := range lines {
		maxLength = max(maxLength, utf8.RuneCountInString(l))
	}
	if opts.Title != "" {
		maxLength = max(maxLength, utf8.RuneCountInString(opts.Title))
	}

	border := strings.Repeat(rule, maxLength+2*padding)
	side := strings.Repeat(" ", padding)
	row := func(s string) string {
		return side + s + strings.Repeat(" ", maxLength-utf8.RuneCountInString(s)) + side
	}

	out := make([]string, 0, len(lines)+4)
	out = append(out, border)
	if opts.Title != "" {
		out = append(out, row(opts.Title), border)
	}
	for _, l := range lines {
		out = append(out, row(l))
	}
	out = append(out, border)
	return out
}
