package devlog

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Code is an SGR parameter string such as "92" or "1;31".
type Code string

const (
	Red    Code = "31"
	Green  Code = "32"
	Yellow Code = "33"
	Blue   Code = "34"
	Purple Code = "35"
	Cyan   Code = "36"
	White  Code = "37"

	BrightRed    Code = "91"
	BrightGreen  Code = "92"
	BrightYellow Code = "93"
	BrightBlue   Code = "94"
	BrightPurple Code = "95"
	BrightCyan   Code = "96"
)

type namedCode struct {
	name string
	code Code
}

var table = []namedCode{
	{"red", Red},
	{"green", Green},
	{"yellow", Yellow},
	{"blue", Blue},
	{"purple", Purple},
	{"cyan", Cyan},
	{"white", White},
	{"brightRed", BrightRed},
	{"brightGreen", BrightGreen},
	{"brightYellow", BrightYellow},
	{"brightBlue", BrightBlue},
	{"brightPurple", BrightPurple},
	{"brightCyan", BrightCyan},
}

// Lookup resolves a symbolic color name, ignoring case.
func Lookup(name string) (Code, bool) {
	for _, nc := range table {
		if strings.EqualFold(nc.name, name) {
			return nc.code, true
		}
	}
	return "", false
}

// Names returns the color names in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, nc := range table {
		names[i] = nc.name
	}
	return names
}

func (c Code) String() string {
	return string(c)
}

// Attributes parses the code into fatih/color attributes. ok is false when any
// part of the code is not a plain number.
func (c Code) Attributes() (attrs []color.Attribute, ok bool) {
	if c == "" {
		return nil, false
	}
	parts := strings.Split(string(c), ";")
	attrs = make([]color.Attribute, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, false
		}
		attrs = append(attrs, color.Attribute(n))
	}
	return attrs, true
}
