package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olusolaa/devlog/internal/app"
	"github.com/olusolaa/devlog/pkg/devlog"
)

func newPrintCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "print <color> [text...]",
		Short: "Print text as a single colored line",
		Long: fmt.Sprintf(`Print text as a single colored line. Text is read from stdin when no
text arguments follow the color. Colors: %s.`, strings.Join(devlog.Names(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: run(func(ctx context.Context, a *app.Application, args []string) error {
			text, err := a.ReadText(args[1:])
			if err != nil {
				return err
			}
			return a.Print(ctx, args[0], text)
		}),
	}
}

func newBoxCmd(run runFunc) *cobra.Command {
	var (
		name     string
		padding  int
		title    bool
		errorMsg string
	)

	cmd := &cobra.Command{
		Use:   "box <kind> [text...]",
		Short: "Print text inside a colored box",
		Long: fmt.Sprintf(`Print text inside a bordered box. Kinds: %s.
Text is read from stdin when no text arguments follow the kind.`, strings.Join(devlog.CategoryNames(), ", ")),
		Args: cobra.MinimumNArgs(1),
	}
	cmd.Flags().StringVar(&name, "name", "", "Tag reported with the box and used as its title")
	cmd.Flags().IntVarP(&padding, "padding", "p", devlog.DefaultPadding, "Spaces on each side of the content")
	cmd.Flags().BoolVar(&title, "title", false, "Add a title row under the top border")
	cmd.Flags().StringVar(&errorMsg, "error", "", "Attach an error message to the bottom border")

	cmd.RunE = run(func(ctx context.Context, a *app.Application, args []string) error {
		text, err := a.ReadText(args[1:])
		if err != nil {
			return err
		}
		req := app.BoxRequest{Name: name, ErrorMsg: errorMsg}
		if cmd.Flags().Changed("padding") {
			req.Padding = &padding
		}
		if cmd.Flags().Changed("title") {
			req.Title = &title
		}
		return a.Box(ctx, args[0], text, req)
	})
	return cmd
}

func newColorsCmd(run runFunc) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the available colors",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *app.Application, args []string) error {
			return a.Colors(ctx, output)
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", app.OutputText, "Output format (text, json)")
	return cmd
}

func newDemoCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every plain and boxed print once",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *app.Application, args []string) error {
			return a.Demo(ctx)
		}),
	}
}
