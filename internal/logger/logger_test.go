package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Info("booking created", "reference_id", "BK1A2B3C4D", "slot_id", 7)

	output := buf.String()
	assert.Contains(t, output, "booking created")
	assert.Contains(t, output, "reference_id=BK1A2B3C4D")
	assert.Contains(t, output, "slot_id=7")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Infof("server starting on port %s", "8080")

	assert.Contains(t, buf.String(), "server starting on port 8080")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	ErrorLogger = log.New(&buf, "ERROR: ", 0)

	Error("db error", "error", assert.AnError)

	output := buf.String()
	assert.Contains(t, output, "db error")
	assert.Contains(t, output, "error=")
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	DebugLogger = log.New(&buf, "DEBUG: ", 0)

	Debugf("cache miss for %s", "experiences:list")

	assert.Contains(t, buf.String(), "cache miss for experiences:list")
}

func TestFormatKVOddPairs(t *testing.T) {
	out := formatKV("msg", []interface{}{"dangling"})
	assert.Equal(t, "msg dangling", out)
}
