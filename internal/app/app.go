package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/devlog/internal/config"
	"github.com/olusolaa/devlog/internal/errors"
	"github.com/olusolaa/devlog/internal/log"
	"github.com/olusolaa/devlog/pkg/devlog"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Application runs the devlog commands against a configured devlog.Logger.
type Application struct {
	Config  *config.Config
	Logger  log.Logger
	Dev     *devlog.Logger
	streams Streams
}

// BoxRequest carries the optional per-call settings of a boxed print.
type BoxRequest struct {
	Name     string
	Padding  *int
	Title    *bool
	ErrorMsg string
}

// Print writes text in the named color, or in the configured default color
// when colorName is empty.
func (a *Application) Print(ctx context.Context, colorName, text string) error {
	code := a.Config.Settings.DefaultColor
	if colorName != "" {
		c, ok := devlog.Lookup(colorName)
		if !ok {
			return errors.NewUserFacing(errors.CodeUnknownColor,
				fmt.Sprintf("unknown color %q", colorName),
				"Run 'devlog colors' to list the available colors.")
		}
		code = c
	}
	a.Logger.Debugf(ctx, "Printing %d bytes in color %s", len(text), code)
	a.Dev.Print(code, text)
	return nil
}

// Box prints text inside the box of the given kind.
func (a *Application) Box(ctx context.Context, kind, text string, req BoxRequest) error {
	cat, ok := devlog.LookupCategory(kind)
	if !ok {
		return errors.NewUserFacing(errors.CodeUnknownCategory,
			fmt.Sprintf("unknown box kind %q", kind),
			"Supported: "+strings.Join(devlog.CategoryNames(), ", "))
	}

	var opts []devlog.Option
	if req.Name != "" {
		opts = append(opts, devlog.WithName(req.Name))
	}
	if req.Padding != nil {
		opts = append(opts, devlog.WithPadding(*req.Padding))
	}
	if req.Title != nil {
		opts = append(opts, devlog.WithTitle(*req.Title))
	}
	if req.ErrorMsg != "" {
		attached := errors.New(errors.CodeUnknown, req.ErrorMsg)
		opts = append(opts, devlog.WithError(attached), devlog.WithTrace(attached.StackTrace))
	}

	a.Logger.Debugf(ctx, "Printing %s box (%d options)", cat.Name, len(opts))
	a.Dev.BoxFor(cat, text, opts...)
	return nil
}

type colorEntry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Colors lists the color table. The listing is not gated by mode or logging;
// it describes the tool rather than logging through it.
func (a *Application) Colors(ctx context.Context, format string) error {
	entries := make([]colorEntry, 0, len(devlog.Names()))
	for _, name := range devlog.Names() {
		code, _ := devlog.Lookup(name)
		entries = append(entries, colorEntry{Name: name, Code: code.String()})
	}

	switch format {
	case OutputJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(a.streams.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, errors.CodeOutputError, "failed to encode color table")
		}
	case OutputText, "":
		tw := tabwriter.NewWriter(a.streams.Out, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "Name\tCode\tSample")
		fmt.Fprintln(tw, "----\t----\t------")
		for _, e := range entries {
			// Trailing column so escape bytes never skew alignment.
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Code, a.Dev.Colorize(e.Name, devlog.Code(e.Code)))
		}
		if err := tw.Flush(); err != nil {
			return errors.Wrap(err, errors.CodeOutputError, "failed to write color table")
		}
	default:
		return errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported output format %q", format), "Supported: text, json")
	}
	a.Logger.Debugf(ctx, "Listed %d colors", len(entries))
	return nil
}

// Demo exercises every plain and boxed operation once.
func (a *Application) Demo(ctx context.Context) error {
	a.Logger.Infof(ctx, "Running demo")
	d := a.Dev

	for _, name := range devlog.Names() {
		code, _ := devlog.Lookup(name)
		d.Print(code, "This line is "+name)
	}

	d.Success("Operation successful")
	d.Error("Something went wrong\nwhile saving the profile",
		devlog.WithError(errors.New(errors.CodeInternal, "profile store unavailable")))
	d.Warning("Disk space is running low")
	d.Info("Fetched 42 records\nin 120ms")
	d.Debug("state = {loaded: true}")
	d.Custom("Custom message", devlog.WithName("Demo"), devlog.WithTitle(true))

	a.Logger.Infof(ctx, "Demo finished")
	return nil
}

// ReadText joins args into the text to print, or reads everything from the
// input stream when there are no args.
func (a *Application) ReadText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(a.streams.In)
	if err != nil {
		return "", errors.WrapUserFacing(err, errors.CodeInputReadError, "failed to read text from stdin", "Pass the text as arguments instead.")
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
