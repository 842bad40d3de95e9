package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	apperrors "github.com/olusolaa/devlog/internal/errors"
	"github.com/olusolaa/devlog/internal/log"
	"github.com/olusolaa/devlog/pkg/devlog"
)

type ANSIMode string

const (
	ANSIAuto   ANSIMode = "auto"
	ANSIAlways ANSIMode = "always"
	ANSINever  ANSIMode = "never"
)

type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

const (
	SinkConsole = "console"
	SinkSlog    = "slog"
)

type Config struct {
	Settings SettingsConfig `mapstructure:"settings"`
}

type SettingsConfig struct {
	LogLevel       log.Level   `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      log.Format  `mapstructure:"log_format" validate:"oneof=text json"`
	Mode           Mode        `mapstructure:"mode" validate:"oneof=development production"`
	LoggingEnabled bool        `mapstructure:"logging_enabled"`
	ANSI           ANSIMode    `mapstructure:"ansi" validate:"oneof=auto always never"`
	Padding        int         `mapstructure:"padding" validate:"min=0,max=64"`
	Rule           string      `mapstructure:"rule" validate:"required"`
	Titles         bool        `mapstructure:"titles"`
	Sink           string      `mapstructure:"sink" validate:"oneof=console slog"`
	DefaultColor   devlog.Code `mapstructure:"default_color" validate:"required"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:       log.LevelWarn,
			LogFormat:      log.FormatText,
			Mode:           ModeDevelopment,
			LoggingEnabled: true,
			ANSI:           ANSIAuto,
			Padding:        devlog.DefaultPadding,
			Rule:           devlog.DefaultRule,
			Sink:           SinkConsole,
			DefaultColor:   devlog.White,
		},
	}
}

// SetDefaults registers every default with v so AutomaticEnv can override
// keys that appear in no config file.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig().Settings
	v.SetDefault("settings.log_level", string(d.LogLevel))
	v.SetDefault("settings.log_format", string(d.LogFormat))
	v.SetDefault("settings.mode", string(d.Mode))
	v.SetDefault("settings.logging_enabled", d.LoggingEnabled)
	v.SetDefault("settings.ansi", string(d.ANSI))
	v.SetDefault("settings.padding", d.Padding)
	v.SetDefault("settings.rule", d.Rule)
	v.SetDefault("settings.titles", d.Titles)
	v.SetDefault("settings.sink", d.Sink)
	v.SetDefault("settings.default_color", string(d.DefaultColor))
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	hooks := mapstructure.ComposeDecodeHookFunc(
		stringToCodeHook(),
		lowerCaseHook(reflect.TypeOf(ANSIMode("")), reflect.TypeOf(Mode("")), reflect.TypeOf(log.Level("")), reflect.TypeOf(log.Format(""))),
	)
	if err := v.Unmarshal(cfg, viper.DecodeHook(hooks)); err != nil {
		return nil, apperrors.WrapUserFacing(err, apperrors.CodeConfigParseError,
			fmt.Sprintf("failed to decode configuration: %v", err),
			"Check the settings section of your configuration file.")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	} else {
		details.WriteString(" " + err.Error())
	}
	return apperrors.NewUserFacing(apperrors.CodeConfigValidation, details.String(), "Please check your configuration file, environment or flags.")
}

// ModeFunc turns the configured mode into the predicate devlog expects.
func (s SettingsConfig) ModeFunc() devlog.ModeFunc {
	if s.Mode == ModeDevelopment {
		return devlog.Development()
	}
	return devlog.Production()
}

// stringToCodeHook accepts a color name ("brightGreen") or a raw numeric code
// ("92") for devlog.Code fields.
func stringToCodeHook() mapstructure.DecodeHookFuncType {
	codeType := reflect.TypeOf(devlog.Code(""))
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != codeType {
			return data, nil
		}
		raw := strings.TrimSpace(reflect.ValueOf(data).String())
		if code, ok := devlog.Lookup(raw); ok {
			return code, nil
		}
		if _, ok := devlog.Code(raw).Attributes(); ok {
			return devlog.Code(raw), nil
		}
		return nil, apperrors.NewUserFacing(apperrors.CodeUnknownColor,
			fmt.Sprintf("unknown color %q", raw),
			"Use one of: "+strings.Join(devlog.Names(), ", "))
	}
}

func lowerCaseHook(types ...reflect.Type) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		for _, t := range types {
			if to == t {
				return strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String())), nil
			}
		}
		return data, nil
	}
}
