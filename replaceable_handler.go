package lumen

import "sync/atomic"

// handlerBox wraps handler in fixed concrete type so that it can be
// stored in atomic.Value regardless of underlying handler type.
type handlerBox struct {
	handler Handler
}

// replaceableHandler wraps another handler that may be swapped out
// dynamically at runtime in a thread-safe fashion.
// idea for replaceable handler is from log15 project.
type replaceableHandler struct {
	box atomic.Value
}

// Handler returns current handler, nil if none was set.
func (h *replaceableHandler) Handler() Handler {
	box, ok := h.box.Load().(handlerBox)
	if !ok {
		return nil
	}
	return box.handler
}

// Handle is implementation of Handler interface. It only passes record
// to underlying handler if it is set.
func (h *replaceableHandler) Handle(r Record) error {
	handler := h.Handler()
	if handler != nil {
		return handler.Handle(r)
	}
	return nil
}

// Close is implementation of HandlerCloser interface.
// If underlying handler implements HandlerCloser interface, its Close
// method will be called.
func (h *replaceableHandler) Close() {
	if closableHandler, ok := h.Handler().(HandlerCloser); ok {
		closableHandler.Close()
	}
}

// Replace sets provided handler as new underlying handler.
func (h *replaceableHandler) Replace(newHandler Handler) {
	h.box.Store(handlerBox{handler: newHandler})
}
