package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/devlog/internal/config"
	"github.com/olusolaa/devlog/internal/errors"
)

type testEnv struct {
	app *Application
	out *bytes.Buffer
	err *bytes.Buffer
}

func newTestApp(t *testing.T, settings map[string]any, stdin string) testEnv {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	v.Set("settings.ansi", "never")
	for k, val := range settings {
		v.Set("settings."+k, val)
	}

	var out, errOut bytes.Buffer
	application, err := BuildApplicationFromViper(context.Background(), v, Streams{
		Out:        &out,
		Err:        &errOut,
		In:         strings.NewReader(stdin),
		IsTerminal: func() bool { return false },
	})
	require.NoError(t, err)
	return testEnv{app: application, out: &out, err: &errOut}
}

func TestPrint(t *testing.T) {
	env := newTestApp(t, nil, "")

	require.NoError(t, env.app.Print(context.Background(), "brightBlue", "hello"))
	assert.Equal(t, "hello\n", env.out.String())
}

func TestPrintWithANSI(t *testing.T) {
	env := newTestApp(t, map[string]any{"ansi": "always"}, "")

	require.NoError(t, env.app.Print(context.Background(), "", "hello"))
	assert.Equal(t, "\x1b[37mhello\x1b[0m\n", env.out.String())
}

func TestPrintUnknownColor(t *testing.T) {
	env := newTestApp(t, nil, "")

	err := env.app.Print(context.Background(), "pink", "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnknownColor))
	assert.Empty(t, env.out.String())
}

func TestPrintSuppressed(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
	}{
		{name: "production mode", settings: map[string]any{"mode": "production"}},
		{name: "logging disabled", settings: map[string]any{"logging_enabled": false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestApp(t, tt.settings, "")
			ctx := context.Background()

			require.NoError(t, env.app.Print(ctx, "red", "hidden"))
			require.NoError(t, env.app.Box(ctx, "success", "hidden", BoxRequest{}))
			require.NoError(t, env.app.Demo(ctx))
			assert.Empty(t, env.out.String())
		})
	}
}

func TestBox(t *testing.T) {
	env := newTestApp(t, map[string]any{"rule": "-"}, "")
	padding := 1
	title := true

	err := env.app.Box(context.Background(), "warning", "low disk", BoxRequest{Name: "Disk", Padding: &padding, Title: &title})
	require.NoError(t, err)

	expected := "----------\n" +
		" DISK     \n" +
		"----------\n" +
		" low disk \n" +
		"----------\n"
	assert.Equal(t, expected, env.out.String())
}

func TestBoxErrorAttachment(t *testing.T) {
	env := newTestApp(t, map[string]any{"rule": "-", "padding": 0}, "")

	err := env.app.Box(context.Background(), "error", "failed", BoxRequest{ErrorMsg: "timeout"})
	require.NoError(t, err)

	lines := strings.Split(env.out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "------", lines[0])
	assert.Equal(t, "failed", lines[1])
	assert.Equal(t, "------  error: [UNKNOWN] timeout", lines[2])
	assert.Contains(t, lines[3], "goroutine")
}

func TestBoxUnknownKind(t *testing.T) {
	env := newTestApp(t, nil, "")

	err := env.app.Box(context.Background(), "fatal", "x", BoxRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnknownCategory))
}

func TestSlogSink(t *testing.T) {
	env := newTestApp(t, map[string]any{"sink": "slog", "log_format": "json", "padding": 0, "rule": "-"}, "")

	require.NoError(t, env.app.Box(context.Background(), "debug", "x", BoxRequest{}))

	out := env.out.String()
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Contains(t, out, `"level":"DEBUG"`)
	assert.Contains(t, out, `"name":"Debug"`)
}

func TestColors(t *testing.T) {
	env := newTestApp(t, nil, "")

	require.NoError(t, env.app.Colors(context.Background(), OutputJSON))
	assert.Contains(t, env.out.String(), `"name": "brightPurple"`)
	assert.Contains(t, env.out.String(), `"code": "95"`)

	env.out.Reset()
	require.NoError(t, env.app.Colors(context.Background(), OutputText))
	assert.Contains(t, env.out.String(), "brightCyan")
	assert.Equal(t, 15, strings.Count(env.out.String(), "\n"))

	err := env.app.Colors(context.Background(), "yaml")
	assert.True(t, errors.Is(err, errors.CodeConfigValidation))
}

func TestColorsIgnoresGates(t *testing.T) {
	env := newTestApp(t, map[string]any{"mode": "production"}, "")

	require.NoError(t, env.app.Colors(context.Background(), OutputText))
	assert.Contains(t, env.out.String(), "brightGreen")
}

func TestDemo(t *testing.T) {
	env := newTestApp(t, nil, "")

	require.NoError(t, env.app.Demo(context.Background()))
	out := env.out.String()
	assert.Contains(t, out, "This line is red")
	assert.Contains(t, out, "This line is brightCyan")
	assert.Contains(t, out, "Operation successful")
	assert.Contains(t, out, "error: [INTERNAL_ERROR] profile store unavailable")
	assert.Contains(t, out, "DEMO")
}

func TestReadText(t *testing.T) {
	env := newTestApp(t, nil, "from stdin\n")

	text, err := env.app.ReadText([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a b", text)

	text, err = env.app.ReadText(nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)
}

func TestResolveANSI(t *testing.T) {
	tty := func() bool { return true }
	pipe := func() bool { return false }

	assert.True(t, resolveANSI(config.ANSIAlways, pipe))
	assert.False(t, resolveANSI(config.ANSINever, tty))
	assert.False(t, resolveANSI(config.ANSIAuto, pipe))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, resolveANSI(config.ANSIAuto, tty))
}

func TestBuildApplicationInvalidConfig(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("settings.sink", "syslog")

	_, err := BuildApplicationFromViper(context.Background(), v, Streams{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeConfigValidation))
}
