package lumen

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Handler processes log records and writes them to appropriate destination.
type Handler interface {
	// Handle processes provided log record.
	Handle(Record) error
}

// HandlerCloser is interface that allows handlers to be closed.
// If handler implements this interface, Close will be called when handler
// is no longer needed.
type HandlerCloser interface {
	Close()
}

// HandlerFunc is function that implements Handler interface.
type HandlerFunc func(Record) error

// Handle just calls HandlerFunc.
func (hf HandlerFunc) Handle(record Record) error {
	return hf(record)
}

// StreamHandler returns handler that formats records with provided
// formatter and writes them to out, one line per record.
func StreamHandler(out io.Writer, formatter Formatter) Handler {
	return HandlerFunc(func(record Record) error {
		_, err := fmt.Fprintln(out, formatter.Format(record))
		return err
	})
}

// combiningHandler combines multiple other handlers
type combiningHandler struct {
	Handlers []Handler
}

// Handle processes record by passing it to all internal handlers of this handler.
func (ch *combiningHandler) Handle(record Record) error {
	var err error
	for _, h := range ch.Handlers {
		if handleErr := h.Handle(record); handleErr != nil {
			err = handleErr
		}
	}
	return err
}

// Close closes all internal handlers if they implement HandlerCloser interface.
func (ch *combiningHandler) Close() {
	for _, h := range ch.Handlers {
		if handlerCloser, ok := h.(HandlerCloser); ok {
			handlerCloser.Close()
		}
	}
}

// CombiningHandler creates and returns handler that passes records to all
// provided handlers.
func CombiningHandler(handlers ...Handler) Handler {
	return &combiningHandler{
		Handlers: handlers,
	}
}

// Filter determines if log record should be processed further.
type Filter interface {
	// ShouldLog returns bool flag that indicates whether message should be
	// processed or discarded.
	ShouldLog(Record) bool
}

// LevelFilter determines if message should be processed or discarded based
// on level in log record.
type LevelFilter struct {
	// Minimal log level that log record has to have in order to pass this filter.
	Level Level
}

// ShouldLog returns true if record level is higher or equal to one set in this LevelFilter.
func (f LevelFilter) ShouldLog(r Record) bool {
	return r.Level >= f.Level
}

// filterHandler passes records to next handler only if all filters accept them.
type filterHandler struct {
	filters []Filter
	next    Handler
}

// Handle passes record to underlying handler if all filters accept it.
func (fh *filterHandler) Handle(record Record) error {
	for _, f := range fh.filters {
		if !f.ShouldLog(record) {
			return nil
		}
	}
	return fh.next.Handle(record)
}

// Close closes underlying handler if it implements HandlerCloser interface.
func (fh *filterHandler) Close() {
	if handlerCloser, ok := fh.next.(HandlerCloser); ok {
		handlerCloser.Close()
	}
}

// FilterHandler creates handler that passes records to next handler only
// if all provided filters accept them.
func FilterHandler(next Handler, filters ...Filter) Handler {
	return &filterHandler{filters: filters, next: next}
}

// FilterLevelHandler creates handler that passes records to next handler
// only if their level is high enough.
func FilterLevelHandler(level Level, next Handler) Handler {
	return FilterHandler(next, LevelFilter{Level: level})
}

// InMemoryHandler is handler that stores formatted records in memory.
// It is mostly useful as stub sink in tests.
type InMemoryHandler struct {
	mu        sync.Mutex
	formatter Formatter
	messages  []string
}

// MemoryHandler creates handler that collects formatted records in memory.
func MemoryHandler(formatter Formatter) *InMemoryHandler {
	return &InMemoryHandler{formatter: formatter}
}

// Handle formats provided record and stores result in memory.
func (mh *InMemoryHandler) Handle(record Record) error {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	mh.messages = append(mh.messages, mh.formatter.Format(record))
	return nil
}

// Messages returns copy of all messages collected so far.
func (mh *InMemoryHandler) Messages() []string {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	messages := make([]string, len(mh.messages))
	copy(messages, mh.messages)
	return messages
}

// stdoutHandler is handler used when no other handler is configured.
// Output is colorized only when stdout is a terminal.
var stdoutHandler = newStdoutHandler()

func newStdoutHandler() Handler {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return StreamHandler(os.Stdout, TerminalFormat())
	}
	return StreamHandler(os.Stdout, SimpleFormat())
}
