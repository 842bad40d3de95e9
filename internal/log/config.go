package log

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Config struct {
	Level  Level  `mapstructure:"level"`
	Format Format `mapstructure:"format"`
}

func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatText,
	}
}
