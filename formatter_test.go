package lumen

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiEscapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiEscapes.ReplaceAllString(s, "")
}

func sampleRecord() Record {
	return Record{
		Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   INFO,
		Message: "executed",
		Logger:  "svc.db",
		Fields: []Field{
			{Key: "request_id", Value: StringValue("abc123")},
			{Key: "query", Value: StringValue("SELECT 1")},
		},
	}
}

func TestSimpleFormatLine(t *testing.T) {
	line := SimpleFormat().Format(sampleRecord())
	assert.Equal(t,
		`[2026-01-02 03:04:05.000] [INFO] executed request_id=abc123 query="SELECT 1"`,
		line)
}

func TestTerminalFormatSameContentAsSimple(t *testing.T) {
	// force escape sequences even when test output is not a terminal
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	record := sampleRecord()
	colored := TerminalFormat().Format(record)
	plain := SimpleFormat().Format(record)

	require.NotEqual(t, colored, plain, "expected escape sequences in terminal format")
	assert.Equal(t, plain, stripANSI(colored), "color must only change decoration, never content")
}

func TestTerminalFormatColorDisabled(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	record := sampleRecord()
	assert.Equal(t, SimpleFormat().Format(record), TerminalFormat().Format(record))
}

func TestTerminalFormatPerLevelStyles(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	record := sampleRecord()
	for _, level := range []Level{DEBUG, INFO, WARN, ERROR, FATAL} {
		record.Level = level
		line := TerminalFormat().Format(record)
		assert.True(t, ansiEscapes.MatchString(line), "expected escape sequences for %s", level)
		assert.Contains(t, stripANSI(line), "["+level.String()+"]")
	}
}

func TestFormatValueQuoting(t *testing.T) {
	record := Record{
		Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   INFO,
		Message: "values",
		Fields: []Field{
			{Key: "note", Value: StringValue("hello world")},
			{Key: "word", Value: StringValue("hello")},
			{Key: "count", Value: IntValue(3)},
			{Key: "ratio", Value: FloatValue(0.5)},
			{Key: "ok", Value: BoolValue(true)},
		},
	}
	line := SimpleFormat().Format(record)
	assert.Contains(t, line, `note="hello world"`)
	assert.Contains(t, line, "word=hello")
	assert.Contains(t, line, "count=3")
	assert.Contains(t, line, "ratio=0.5")
	assert.Contains(t, line, "ok=true")
}

func TestJSONFormat(t *testing.T) {
	out := JSONFormat(false).Format(sampleRecord())

	var decoded struct {
		Time    time.Time         `json:"time"`
		Level   string            `json:"level"`
		Message string            `json:"message"`
		Context map[string]string `json:"context"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "INFO", decoded.Level)
	assert.Equal(t, "executed", decoded.Message)
	assert.Equal(t, "abc123", decoded.Context["request_id"])
	assert.Equal(t, "SELECT 1", decoded.Context["query"])
}

func TestJSONFormatPretty(t *testing.T) {
	out := JSONFormat(true).Format(sampleRecord())
	assert.True(t, strings.Contains(out, "\n"), "pretty output should be indented")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
}
