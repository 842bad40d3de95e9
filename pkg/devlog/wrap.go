package devlog

import "github.com/fatih/color"

const (
	escape = "\x1b["
	reset  = escape + "0m"
)

// Wrap surrounds text with the escape sequence for code and a reset. With ansi
// off the text is returned untouched.
func Wrap(text string, code Code, ansi bool) string {
	if !ansi {
		return text
	}
	attrs, ok := code.Attributes()
	if !ok {
		return escape + string(code) + "m" + text + reset
	}
	c := color.New(attrs...)
	// color.NoColor follows TTY detection; the caller already decided.
	c.EnableColor()
	return c.Sprint(text)
}
