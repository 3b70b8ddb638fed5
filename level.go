package lumen

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Level represents rank of message importance.
// Log records carry level and loggers use it to decide whether record
// should be processed at all.
type Level uint

// Levels of log records, ordered by severity. NOTSET is zero value used
// in options to mean "not configured"; on a logger it disables filtering.
const (
	NOTSET Level = iota
	DEBUG        = iota * 10
	INFO         = iota * 10
	WARN         = iota * 10
	ERROR        = iota * 10
	FATAL        = iota * 10
)

// Level tables are fixed process-wide static data. They are never mutated
// after package initialization, so reads need no synchronization.
var (
	level2Name = map[Level]string{
		NOTSET: "NOTSET",
		DEBUG:  "DEBUG",
		INFO:   "INFO",
		WARN:   "WARN",
		ERROR:  "ERROR",
		FATAL:  "FATAL",
	}
	name2Level = map[string]Level{
		"NOTSET": NOTSET,
		"DEBUG":  DEBUG,
		"INFO":   INFO,
		"WARN":   WARN,
		"ERROR":  ERROR,
		"FATAL":  FATAL,
	}
)

// levelName returns name of provided level.
// If provided level is not registered, empty string is returned.
func levelName(level Level) string {
	return level2Name[level]
}

// LevelFromName returns level registered under provided name.
// ErrUnknownLevel is returned for names that are not registered.
func LevelFromName(name string) (Level, error) {
	level, ok := name2Level[name]
	if !ok {
		return NOTSET, errors.Wrap(ErrUnknownLevel, name)
	}
	return level, nil
}

// String returns level's string representation.
func (l Level) String() string {
	name := levelName(l)
	if name == "" {
		return fmt.Sprintf("Level(%d)", uint(l))
	}
	return name
}

// MarshalJSON returns levels JSON representation (implementation of json.Marshaler)
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", l.String())), nil
}

// UnmarshalJSON recreates level from JSON representation (implementation of json.Unmarshaler)
func (l *Level) UnmarshalJSON(b []byte) error {
	name, _ := strconv.Unquote(string(b))
	level, err := LevelFromName(name)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Theme is definition of interface needed for colorizing log message to console.
type Theme interface {
	Time(msg string, args ...interface{}) string
	Debug(msg string, args ...interface{}) string
	Info(msg string, args ...interface{}) string
	Warn(msg string, args ...interface{}) string
	Error(msg string, args ...interface{}) string
	Fatal(msg string, args ...interface{}) string
	ForLevel(level Level) func(msg string, args ...interface{}) string
}

type theme struct {
	timeColor  func(str string, args ...interface{}) string
	debugColor func(str string, args ...interface{}) string
	infoColor  func(str string, args ...interface{}) string
	warnColor  func(str string, args ...interface{}) string
	errorColor func(str string, args ...interface{}) string
	fatalColor func(str string, args ...interface{}) string
}

func (t *theme) Time(msg string, args ...interface{}) string {
	return t.timeColor(msg, args...)
}

func (t *theme) Debug(msg string, args ...interface{}) string {
	return t.debugColor(msg, args...)
}

func (t *theme) Info(msg string, args ...interface{}) string {
	return t.infoColor(msg, args...)
}

func (t *theme) Warn(msg string, args ...interface{}) string {
	return t.warnColor(msg, args...)
}

func (t *theme) Error(msg string, args ...interface{}) string {
	return t.errorColor(msg, args...)
}

func (t *theme) Fatal(msg string, args ...interface{}) string {
	return t.fatalColor(msg, args...)
}

func (t *theme) ForLevel(level Level) func(msg string, args ...interface{}) string {
	switch {
	case level < INFO:
		return t.debugColor
	case level >= INFO && level < WARN:
		return t.infoColor
	case level >= WARN && level < ERROR:
		return t.warnColor
	case level >= ERROR && level < FATAL:
		return t.errorColor
	case level >= FATAL:
		return t.fatalColor
	default:
		return t.infoColor
	}
}

var (
	// DefaultTheme defines theme used by default.
	DefaultTheme = &theme{
		timeColor:  color.New(color.FgWhite, color.Faint).SprintfFunc(),
		debugColor: color.New(color.FgHiBlack).SprintfFunc(),
		infoColor:  color.New(color.FgCyan).SprintfFunc(),
		warnColor:  color.New(color.FgYellow).SprintfFunc(),
		errorColor: color.New(color.FgRed, color.Bold).SprintfFunc(),
		fatalColor: color.New(color.BgRed, color.FgHiWhite, color.Bold).SprintfFunc(),
	}

	// NoColorTheme defines theme that does not color any output.
	NoColorTheme = &theme{
		timeColor:  fmt.Sprintf,
		debugColor: fmt.Sprintf,
		infoColor:  fmt.Sprintf,
		warnColor:  fmt.Sprintf,
		errorColor: fmt.Sprintf,
		fatalColor: fmt.Sprintf,
	}
)
