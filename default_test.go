package lumen_test

import (
	"strings"
	"testing"

	"github.com/delicb/lumen"
)

func TestDefaultLogSimpleFormatter(t *testing.T) {
	memoryHandler := lumen.MemoryHandler(lumen.SimpleFormat())
	lumen.SetHandler(memoryHandler)
	lumen.Log(lumen.INFO, "some message")
	messages := memoryHandler.Messages()
	if len(messages) != 1 {
		t.Errorf("Expected only one message, found %d", len(messages))
	}
	if strings.Index(messages[0], "some message") < 0 {
		t.Errorf("Did not found message 'some message' in output.")
	}
}

func TestDefaultLeveledFunctions(t *testing.T) {
	memoryHandler := lumen.MemoryHandler(lumen.SimpleFormat())
	lumen.SetHandler(memoryHandler)
	lumen.Warn("disk almost full", "usage", 0.97)
	lumen.ErrorCtx("request failed", lumen.Ctx{"status": 502})
	messages := memoryHandler.Messages()
	if len(messages) != 2 {
		t.Fatalf("Expected two messages, found %d", len(messages))
	}
	if !strings.Contains(messages[0], "[WARN] disk almost full") || !strings.Contains(messages[0], "usage=0.97") {
		t.Errorf("Unexpected warn line: %s", messages[0])
	}
	if !strings.Contains(messages[1], "[ERROR] request failed") || !strings.Contains(messages[1], "status=502") {
		t.Errorf("Unexpected error line: %s", messages[1])
	}
}
