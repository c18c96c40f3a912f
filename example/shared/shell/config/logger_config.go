package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrInvalidLogSetting is returned for an unknown log level or format.
var ErrInvalidLogSetting = errors.New("invalid log setting")

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ParseLogLevel maps debug, info, warn and error (case-insensitive) to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	var parsed slog.Level

	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidLogSetting, level)
	}

	return parsed, nil
}

// NewLogger creates a slog.Logger writing to w in the given format.
func NewLogger(w io.Writer, level string, format string) (*slog.Logger, error) {
	parsedLevel, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	options := &slog.HandlerOptions{Level: parsedLevel}

	switch strings.ToLower(format) {
	case LogFormatText, "":
		return slog.New(slog.NewTextHandler(w, options)), nil
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, options)), nil
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidLogSetting, format)
	}
}
