package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCapture(t *testing.T, opts Options) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	opts.Stdout = stdout
	opts.Stderr = stderr
	return New(opts), stdout, stderr
}

func TestThresholdSuppressesLowerLevels(t *testing.T) {
	l, stdout, stderr := newCapture(t, Options{Level: "warn", Format: FormatCompact})

	l.Debug("hidden")
	l.Info("hidden")
	assert.Zero(t, stdout.Len())
	assert.Zero(t, stderr.Len())

	l.Warn("visible")
	l.Error("also visible", errors.New("boom"))
	assert.Zero(t, stdout.Len(), "warn and error must not reach stdout")
	assert.Contains(t, stderr.String(), "visible")
	assert.Contains(t, stderr.String(), "boom")
}

func TestStreamSplit(t *testing.T) {
	l, stdout, stderr := newCapture(t, Options{Level: "debug", Format: FormatCompact})

	l.Debug("d")
	l.Info("i")
	l.Warn("w")

	assert.Contains(t, stdout.String(), `"d"`)
	assert.Contains(t, stdout.String(), `"i"`)
	assert.NotContains(t, stdout.String(), `"w"`)
	assert.Contains(t, stderr.String(), `"w"`)
}

func TestCompactModeIsSingleLineJSON(t *testing.T) {
	l, stdout, _ := newCapture(t, Options{Level: "info", Format: FormatCompact})

	l.Info("payload", zap.String("key", "value"))

	line := bytes.TrimSpace(stdout.Bytes())
	assert.NotContains(t, string(line), "\n")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(line, &entry))
	assert.Equal(t, "payload", entry["message"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Contains(t, entry, "timestamp")
}

func TestProductionErrorOmitsStacktrace(t *testing.T) {
	l, _, stderr := newCapture(t, Options{Level: "info", Format: FormatCompact, Development: false})

	l.Error("failed", errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(stderr.Bytes()), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, entry, "stacktrace")
}

func TestDevelopmentErrorIncludesStacktrace(t *testing.T) {
	l, _, stderr := newCapture(t, Options{Level: "info", Format: FormatCompact, Development: true})

	l.Error("failed", errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(stderr.Bytes()), &entry))
	assert.Contains(t, entry, "stacktrace")
}

func TestRequestRoutesOnStatus(t *testing.T) {
	l, stdout, stderr := newCapture(t, Options{Level: "info", Format: FormatCompact})

	l.Request("GET", "/api/v1/courses", 200, 5*time.Millisecond)
	assert.Contains(t, stdout.String(), "/api/v1/courses")
	assert.Zero(t, stderr.Len())

	l.Request("POST", "/api/v1/courses", 400, 5*time.Millisecond)
	assert.Contains(t, stderr.String(), `"status":400`)
}

func TestPerformanceClassification(t *testing.T) {
	l, stdout, stderr := newCapture(t, Options{Level: "info", Format: FormatCompact})

	l.Performance("list_courses", 50*time.Millisecond)
	assert.Contains(t, stdout.String(), `"fast"`)

	l.Performance("list_courses", 250*time.Millisecond)
	assert.Contains(t, stdout.String(), `"moderate"`)

	l.Performance("rebuild_index", 2*time.Second)
	assert.Contains(t, stderr.String(), `"slow"`, "slow operations escalate to warn")
}

func TestPrettyModeDecoratesSuccessAndFailure(t *testing.T) {
	l, stdout, stderr := newCapture(t, Options{Level: "info", Format: FormatPretty})

	l.Success("created course")
	assert.Contains(t, stdout.String(), "✔ created course")

	l.Failure("create failed", errors.New("boom"))
	assert.Contains(t, stderr.String(), "✘ create failed")
}

func TestReconfigureSwitchesModeAndLevel(t *testing.T) {
	l, stdout, _ := newCapture(t, Options{Level: "info", Format: FormatPretty})

	l.Info("first")
	require.NotZero(t, stdout.Len())

	stdout2 := &bytes.Buffer{}
	l.Reconfigure(Options{Level: "error", Format: FormatCompact, Stdout: stdout2, Stderr: &bytes.Buffer{}})

	l.Info("suppressed")
	assert.Zero(t, stdout2.Len())
}

func TestSetLevel(t *testing.T) {
	l, stdout, _ := newCapture(t, Options{Level: "error", Format: FormatCompact})

	l.Info("quiet")
	assert.Zero(t, stdout.Len())

	l.SetLevel("debug")
	l.Info("loud")
	assert.Contains(t, stdout.String(), "loud")
}
