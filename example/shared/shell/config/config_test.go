package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/config"
)

func Test_ParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			level, err := config.ParseLogLevel(input)

			require.NoError(t, err)
			assert.Equal(t, expected, level)
		})
	}
}

func Test_ParseLogLevel_Unknown(t *testing.T) {
	_, err := config.ParseLogLevel("verbose")

	assert.ErrorIs(t, err, config.ErrInvalidLogSetting)
}

func Test_NewLogger_JSONFormatRespectsLevel(t *testing.T) {
	// arrange
	var out bytes.Buffer

	logger, err := config.NewLogger(&out, "warn", config.LogFormatJSON)
	require.NoError(t, err)

	// act
	logger.Info("ignored")
	logger.Warn("kept", "book_title", "Clean Code")

	// assert
	assert.NotContains(t, out.String(), "ignored")
	assert.Contains(t, out.String(), `"msg":"kept"`)
	assert.Contains(t, out.String(), `"book_title":"Clean Code"`)
}

func Test_NewLogger_TextFormat(t *testing.T) {
	var out bytes.Buffer

	logger, err := config.NewLogger(&out, "info", config.LogFormatText)
	require.NoError(t, err)

	logger.Info("hello")

	assert.Contains(t, out.String(), "msg=hello")
}

func Test_NewLogger_UnknownFormat(t *testing.T) {
	_, err := config.NewLogger(&bytes.Buffer{}, "info", "xml")

	assert.ErrorIs(t, err, config.ErrInvalidLogSetting)
}

func Test_NewResource_CarriesServiceName(t *testing.T) {
	// arrange
	settings := config.DefaultObservabilitySettings()
	settings.ServiceName = "library-test"

	// act
	res, err := config.NewResource(context.Background(), settings)

	// assert
	require.NoError(t, err)
	assert.Contains(t, res.Attributes(), semconv.ServiceNameKey.String("library-test"))
}
