package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trackboard/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			gt.Equal(t, tc.expected, logging.ParseLogLevel(tc.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Equal(t, logging.FormatJSON, f)

	f, err = logging.ParseFormat("Console")
	gt.NoError(t, err)
	gt.Equal(t, logging.FormatConsole, f)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, logging.FormatAuto, f)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewLoggerWithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatJSON)

	logger.Debug("hidden")
	logger.Info("dashboard built", "issues", 4)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, "dashboard built", entry["msg"])
	gt.Equal(t, float64(4), entry["issues"])
}

func TestNewLogger_NonTerminalIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)
	logger.Info("hello")

	gt.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
