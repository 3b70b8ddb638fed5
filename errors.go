package lumen

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownLevel is returned when level name or rank is not one of
	// registered levels.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnsupportedValueType is returned when value of type outside of
	// supported set (string, integer, float, bool) is passed to context.
	ErrUnsupportedValueType = errors.New("unsupported context value type")
)

// SinkWriteError describes failure of handler to persist or display
// rendered log record. It is never returned to the call site that emitted
// the record, only delivered to the logger's error callback.
type SinkWriteError struct {
	// Logger is full name of logger whose record failed to be written.
	Logger string
	// Err is underlying error reported by the sink.
	Err error
}

// Error is implementation of error interface.
func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("logger %q: sink write failed: %v", e.Logger, e.Err)
}

// Unwrap returns underlying sink error.
func (e *SinkWriteError) Unwrap() error { return e.Err }

// Cause returns underlying sink error (github.com/pkg/errors compatibility).
func (e *SinkWriteError) Cause() error { return e.Err }
