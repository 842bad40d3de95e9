package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/devlog/internal/app"
	"github.com/olusolaa/devlog/internal/config"
	apperrors "github.com/olusolaa/devlog/internal/errors"
)

type rootOptions struct {
	cfgFile   string
	logLevel  string
	logFormat string
	mode      string
	noColor   bool
	quiet     bool
}

// newRootCmd builds the command tree around its own viper instance so tests
// can run it repeatedly.
func newRootCmd(v *viper.Viper, streams app.Streams) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "devlog",
		Short: "Prints ANSI-colored lines and boxes for development builds.",
		Long: `devlog wraps text in ANSI color codes and draws bordered boxes around it.
Output only appears when logging is enabled and the mode is development;
in production mode every command that logs is silent.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(cmd, v, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "Configuration file path (default is .devlog.yaml in . or $HOME)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Override diagnostics log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Override diagnostics log format (text, json)")
	flags.StringVar(&opts.mode, "mode", "", "Override execution mode (development, production)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI color codes")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Disable all developer output")

	_ = v.BindPFlag("settings.log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("settings.log_format", flags.Lookup("log-format"))
	_ = v.BindPFlag("settings.mode", flags.Lookup("mode"))

	v.SetEnvPrefix("DEVLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	config.SetDefaults(v)

	run := func(fn func(ctx context.Context, a *app.Application, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := app.BuildApplicationFromViper(cmd.Context(), v, streams)
			if err != nil {
				return err
			}
			if err := fn(cmd.Context(), a, args); err != nil {
				a.Logger.Errorf(cmd.Context(), err, "Command %s failed", cmd.Name())
				return err
			}
			return nil
		}
	}

	cmd.AddCommand(
		newPrintCmd(run),
		newBoxCmd(run),
		newColorsCmd(run),
		newDemoCmd(run),
	)
	return cmd
}

type runFunc func(fn func(ctx context.Context, a *app.Application, args []string) error) func(*cobra.Command, []string) error

func initializeConfig(cmd *cobra.Command, v *viper.Viper, opts *rootOptions) error {
	if opts.cfgFile != "" {
		v.SetConfigFile(opts.cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".devlog")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError,
				"failed to read config file", "Check that the file exists and is valid YAML.")
		}
	}

	if opts.noColor {
		v.Set("settings.ansi", string(config.ANSINever))
	}
	if opts.quiet {
		v.Set("settings.logging_enabled", false)
	}
	return nil
}

func reportError(w io.Writer, err error) {
	userMsg, suggestion, ok := apperrors.GetUserFacingMessage(err)
	if !ok {
		userMsg, suggestion = err.Error(), ""
	}
	fmt.Fprintf(w, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", suggestion)
	}
}

func Execute(ctx context.Context) {
	streams := app.Streams{Out: color.Output, Err: os.Stderr, In: os.Stdin}
	if err := newRootCmd(viper.New(), streams).ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
