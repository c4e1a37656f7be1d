package logger

import (
	"bytes"
	"context"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func bufferLogger(level LogLevel, json bool) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(&Config{Level: level, Output: &buf, JSON: json, TimeFormat: "15:04:05"}), &buf
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the logger stored in the context", func(t *testing.T) {
		l := NewForTests()
		assert.Equal(t, l, FromContext(ContextWithLogger(t.Context(), l)))
	})

	t.Run("Should fall back to the default logger", func(t *testing.T) {
		for name, ctx := range map[string]context.Context{
			"empty":      t.Context(),
			"wrong type": context.WithValue(t.Context(), LoggerCtxKey, "not a logger"),
			"nil logger": context.WithValue(t.Context(), LoggerCtxKey, Logger(nil)),
		} {
			assert.Equal(t, GetDefault(), FromContext(ctx), name)
		}
	})
}

func TestLogLevel(t *testing.T) {
	t.Run("Should map to charm levels", func(t *testing.T) {
		cases := map[LogLevel]charmlog.Level{
			DebugLevel:          charmlog.DebugLevel,
			InfoLevel:           charmlog.InfoLevel,
			WarnLevel:           charmlog.WarnLevel,
			ErrorLevel:          charmlog.ErrorLevel,
			DisabledLevel:       disabledCharmLevel,
			LogLevel("verbose"): charmlog.InfoLevel,
		}
		for level, want := range cases {
			assert.Equal(t, want, level.ToCharmlogLevel(), level.String())
		}
	})

	t.Run("Should parse names case-insensitively and default to info", func(t *testing.T) {
		assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
		assert.Equal(t, WarnLevel, ParseLevel(" warn "))
		assert.Equal(t, DisabledLevel, ParseLevel("disabled"))
		assert.Equal(t, InfoLevel, ParseLevel("verbose"))
		assert.Equal(t, InfoLevel, ParseLevel(""))
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should filter messages below the level", func(t *testing.T) {
		l, buf := bufferLogger(WarnLevel, false)
		l.Debug("cycle truncated")
		l.Info("generating preview")
		l.Warn("enumeration has no members")
		l.Error("fixture generation failed")

		out := buf.String()
		assert.NotContains(t, out, "cycle truncated")
		assert.NotContains(t, out, "generating preview")
		assert.Contains(t, out, "enumeration has no members")
		assert.Contains(t, out, "fixture generation failed")
	})

	t.Run("Should write nothing when disabled", func(t *testing.T) {
		l, buf := bufferLogger(DisabledLevel, false)
		l.Error("fixture generation failed")
		assert.Empty(t, buf.String())
	})

	t.Run("Should emit JSON with key-value fields", func(t *testing.T) {
		l, buf := bufferLogger(InfoLevel, true)
		l.With("fixture", "person").Info("generated", "path", "Home.City")

		line := buf.String()
		require.True(t, gjson.Valid(line))
		assert.Equal(t, "generated", gjson.Get(line, "msg").String())
		assert.Equal(t, "person", gjson.Get(line, "fixture").String())
		assert.Equal(t, "Home.City", gjson.Get(line, "path").String())
	})

	t.Run("Should stay silent for a nil config under go test", func(t *testing.T) {
		require.True(t, IsTestEnvironment())
		require.NotNil(t, NewLogger(nil))
	})
}

func TestInit(t *testing.T) {
	t.Run("Should replace the default logger", func(t *testing.T) {
		var buf bytes.Buffer
		Init(&Config{Level: WarnLevel, Output: &buf, TimeFormat: "15:04:05"})
		t.Cleanup(func() { Init(TestConfig()) })

		GetDefault().Warn("fixture warning", "path", "Pets")

		assert.Contains(t, buf.String(), "fixture warning")
		assert.Contains(t, buf.String(), "Pets")
	})
}

func TestGetLoggerConfig(t *testing.T) {
	t.Run("Should read the logging flags", func(t *testing.T) {
		cmd := &cobra.Command{Use: "fixturegen"}
		cmd.Flags().String("log-level", "info", "")
		cmd.Flags().Bool("log-json", false, "")
		cmd.Flags().Bool("log-source", false, "")
		require.NoError(t, cmd.ParseFlags([]string{"--log-level", "debug", "--log-json"}))

		level, json, source, err := GetLoggerConfig(cmd)

		require.NoError(t, err)
		assert.Equal(t, "debug", level)
		assert.True(t, json)
		assert.False(t, source)
	})

	t.Run("Should fail when the flags are not declared", func(t *testing.T) {
		_, _, _, err := GetLoggerConfig(&cobra.Command{Use: "bare"})
		assert.Error(t, err)
	})
}
