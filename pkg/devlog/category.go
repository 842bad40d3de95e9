package devlog

import (
	"log/slog"
	"strings"
)

// Category binds a box kind to its color, default name and severity.
type Category struct {
	Code  Code
	Name  string
	Level slog.Level
}

var (
	CategorySuccess = Category{Code: BrightGreen, Name: "Success", Level: slog.LevelInfo}
	CategoryError   = Category{Code: BrightRed, Name: "Error", Level: slog.LevelError}
	CategoryWarning = Category{Code: BrightYellow, Name: "Warning", Level: slog.LevelWarn}
	CategoryInfo    = Category{Code: BrightBlue, Name: "Info", Level: slog.LevelInfo}
	CategoryDebug   = Category{Code: BrightPurple, Name: "Debug", Level: slog.LevelDebug}
	CategoryCustom  = Category{Code: BrightCyan, Name: "Log", Level: slog.LevelInfo}
)

var categories = map[string]Category{
	"success": CategorySuccess,
	"error":   CategoryError,
	"warning": CategoryWarning,
	"info":    CategoryInfo,
	"debug":   CategoryDebug,
	"custom":  CategoryCustom,
}

// CategoryNames lists the accepted LookupCategory keys.
func CategoryNames() []string {
	return []string{"success", "error", "warning", "info", "debug", "custom"}
}

// LookupCategory finds a category by kind ("success", "error", ...). "cyan"
// is accepted as an alias for "custom".
func LookupCategory(kind string) (Category, bool) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "cyan" {
		kind = "custom"
	}
	c, ok := categories[kind]
	return c, ok
}

// BoxFor prints text in the box of cat.
func (l *Logger) BoxFor(cat Category, text string, opts ...Option) {
	l.box(cat, text, opts)
}
