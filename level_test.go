package lumen

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func TestBuiltinLevelsRegistered(t *testing.T) {
	for _, builtinLevel := range []Level{
		NOTSET, DEBUG, INFO, WARN, ERROR, FATAL,
	} {
		if _, ok := level2Name[builtinLevel]; !ok {
			t.Errorf("Level %s not registered.\n", builtinLevel)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{DEBUG, INFO, WARN, ERROR, FATAL}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("Expected %s < %s.\n", ordered[i-1], ordered[i])
		}
	}
}

func TestGetBuiltinLevelName(t *testing.T) {
	for level, name := range map[Level]string{
		NOTSET:   "NOTSET",
		DEBUG:    "DEBUG",
		INFO:     "INFO",
		WARN:     "WARN",
		ERROR:    "ERROR",
		FATAL:    "FATAL",
		Level(2): "",
	} {
		if got := levelName(level); got != name {
			t.Errorf("Wrong level name, expected %s got %s.\n", name, got)
		}
	}
}

func TestBuiltinStringer(t *testing.T) {
	for level, name := range map[Level]string{
		NOTSET:   "NOTSET",
		DEBUG:    "DEBUG",
		INFO:     "INFO",
		WARN:     "WARN",
		ERROR:    "ERROR",
		FATAL:    "FATAL",
		Level(2): "Level(2)",
	} {
		if level.String() != name {
			t.Errorf("Wrong level string value, expected %s got %s.\n", name, level.String())
		}
	}
}

func TestLevelFromName(t *testing.T) {
	for name, level := range name2Level {
		got, err := LevelFromName(name)
		if err != nil {
			t.Fatalf("Unexpected error resolving %s: %v.\n", name, err)
		}
		if got != level {
			t.Errorf("Wrong level for name %s, expected %s got %s.\n", name, level, got)
		}
	}
}

func TestLevelFromNameUnknown(t *testing.T) {
	_, err := LevelFromName("VERBOSE")
	if err == nil {
		t.Fatal("Expected error when resolving unknown level name, got nil.")
	}
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("Expected ErrUnknownLevel, got %v.\n", err)
	}
}

func TestJSONMarshalLevel(t *testing.T) {
	m, err := json.Marshal(map[string]Level{"a": ERROR})
	if err != nil {
		t.Fatal(err)
	}
	if string(m) != `{"a":"ERROR"}` {
		t.Fatalf("Unexpected level JSON: %s.\n", string(m))
	}
	var r map[string]Level
	if err := json.Unmarshal(m, &r); err != nil {
		t.Fatal(err)
	}
	if r["a"] != ERROR {
		t.Fatalf("Level did not survive JSON round trip, got %s.\n", r["a"])
	}
}

func TestJSONUnmarshalUnknownLevel(t *testing.T) {
	var l Level
	if err := l.UnmarshalJSON([]byte(`"TRACE"`)); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("Expected ErrUnknownLevel, got %v.\n", err)
	}
}
