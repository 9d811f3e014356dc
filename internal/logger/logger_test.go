package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() { Setup("info") })
	return buf
}

func TestSetupLevels(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"unknown": logrus.InfoLevel,
	}
	for level, expected := range cases {
		t.Run(level, func(t *testing.T) {
			Setup(level)
			assert.Equal(t, expected, logrus.GetLevel())
		})
	}
}

func TestWithContext(t *testing.T) {
	t.Run("user and request id", func(t *testing.T) {
		Setup("info")
		buf := captureOutput(t)

		ctx := ContextWithUsername(context.Background(), "pilot-admin")
		ctx = ContextWithRequestID(ctx, "req-1")
		WithContext(ctx).Info("flight submitted")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "pilot-admin", entry["user"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "flight submitted", entry["msg"])
	})

	t.Run("anonymous", func(t *testing.T) {
		Setup("info")
		buf := captureOutput(t)

		WithContext(context.Background()).WithField("flight_code", "ABC123").Info("listing")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "anonymous", entry["user"])
		assert.Equal(t, "ABC123", entry["flight_code"])
	})
}
