package lumen

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Ctx is convenience type for providing initial or per-call context
// values. Go maps have no deterministic iteration order, so keys from
// Ctx are applied in sorted order.
type Ctx map[string]interface{}

// LoggerOptions holds optional configuration for new logger.
type LoggerOptions struct {
	// Context holds initial key-value pairs for logger's own context layer.
	Context Ctx
	// Handler processes records emitted by this logger. If nil, handler
	// of nearest ancestor is used, stdout handler at the very root.
	Handler Handler
	// Level is minimal level that this logger will process.
	// NOTSET (zero value) processes everything.
	Level Level
	// OnError receives errors that must not interrupt caller's code path,
	// like sink write failures. If nil, callback of nearest ancestor is used.
	OnError func(error)
	// OnFatal is called with emitted record after every FATAL level log
	// call. Logger never terminates the process itself, that decision is
	// left to the callback.
	OnFatal func(Record)
}

// Logger is central data type in lumen which represents logger itself.
// Logger owns one context (whose parent is context of parent logger)
// and minimal level threshold. All processing is synchronous and happens
// on the calling goroutine, so records emitted sequentially from one
// goroutine reach the handler in that same order.
type Logger struct {
	name     string
	fullName string
	// parent is fixed at creation and never reassigned, so it is safe
	// to read without synchronization.
	parent  *Logger
	context *Context
	level   Level
	handler *replaceableHandler
	onError func(error)
	onFatal func(Record)

	mu       sync.Mutex
	children map[string]*Logger
}

// rootLogger is parent of all loggers created by GetLogger.
var rootLogger = &Logger{
	context:  NewContext(nil),
	handler:  &replaceableHandler{},
	children: make(map[string]*Logger),
}

func newLogger(name string, parent *Logger, options LoggerOptions) (*Logger, error) {
	fullName := name
	if parent != nil && parent.fullName != "" {
		fullName = parent.fullName + "." + name
	}
	var parentCtx *Context
	if parent != nil {
		parentCtx = parent.context
	}
	ctx := NewContext(parentCtx)
	for _, key := range sortedKeys(options.Context) {
		if err := ctx.Set(key, options.Context[key]); err != nil {
			return nil, errors.Wrapf(err, "logger %q: key %q", fullName, key)
		}
	}
	l := &Logger{
		name:     name,
		fullName: fullName,
		parent:   parent,
		context:  ctx,
		level:    options.Level,
		handler:  &replaceableHandler{},
		onError:  options.OnError,
		onFatal:  options.OnFatal,
		children: make(map[string]*Logger),
	}
	if options.Handler != nil {
		l.handler.Replace(options.Handler)
	}
	return l, nil
}

// child returns existing child with provided name or creates new one
// with provided options. Options are applied only on first creation.
func (l *Logger) child(name string, options LoggerOptions) (*Logger, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.children[name]; ok {
		return existing, nil
	}
	child, err := newLogger(name, l, options)
	if err != nil {
		return nil, err
	}
	l.children[name] = child
	return child, nil
}

// GetLogger returns logger registered under provided dot-separated name,
// creating it (and any missing intermediate loggers) with default options.
// Empty name returns root logger.
func GetLogger(fullName string) *Logger {
	if fullName == "" {
		return rootLogger
	}
	current := rootLogger
	for _, part := range strings.Split(fullName, ".") {
		// cannot fail, default options carry no context values
		current, _ = current.child(part, LoggerOptions{})
	}
	return current
}

// GetLoggerOptions returns logger registered under provided dot-separated
// name, creating it with provided options. Intermediate loggers are
// created with default options. If logger with this name already exists,
// it is returned unchanged and options are ignored.
func GetLoggerOptions(fullName string, options LoggerOptions) (*Logger, error) {
	if fullName == "" {
		return rootLogger, nil
	}
	parts := strings.Split(fullName, ".")
	current := rootLogger
	for _, part := range parts[:len(parts)-1] {
		current, _ = current.child(part, LoggerOptions{})
	}
	return current.child(parts[len(parts)-1], options)
}

// SubLogger creates and returns new logger whose parent is current logger.
func (l *Logger) SubLogger(name string) *Logger {
	child, _ := l.child(name, LoggerOptions{})
	return child
}

// SubLoggerOptions creates and returns new logger with provided options
// whose parent is current logger.
func (l *Logger) SubLoggerOptions(name string, options LoggerOptions) (*Logger, error) {
	return l.child(name, options)
}

// WithLevel returns derived logger that shares this logger's context and
// handler but has its own minimal level. Level is logger-local setting,
// it is never inherited through context.
func (l *Logger) WithLevel(level Level) *Logger {
	derived := &Logger{
		name:     l.name,
		fullName: l.fullName,
		parent:   l.parent,
		context:  l.context,
		level:    level,
		handler:  &replaceableHandler{},
		onError:  l.onError,
		onFatal:  l.onFatal,
		children: make(map[string]*Logger),
	}
	if h := l.handler.Handler(); h != nil {
		derived.handler.Replace(h)
	}
	return derived
}

// Name returns last segment of logger's name.
func (l *Logger) Name() string { return l.name }

// FullName returns logger's full dot-separated name.
func (l *Logger) FullName() string { return l.fullName }

// Context returns context owned by this logger.
func (l *Logger) Context() *Context { return l.context }

// Level returns minimal level that this logger processes.
func (l *Logger) Level() Level { return l.level }

// Set adds key-value pair to this logger's own context layer. Context of
// parent logger is never touched. ErrUnsupportedValueType is returned
// for values outside of supported scalar set.
func (l *Logger) Set(key string, value interface{}) error {
	return l.context.Set(key, value)
}

// SetHandler sets new handler for this logger.
func (l *Logger) SetHandler(handler Handler) {
	l.handler.Replace(handler)
}

// effectiveHandler returns handler that should process records of this
// logger: its own if set, otherwise nearest ancestor's, with stdout
// handler as final fallback.
func (l *Logger) effectiveHandler() Handler {
	for cur := l; cur != nil; cur = cur.parent {
		if h := cur.handler.Handler(); h != nil {
			return h
		}
	}
	return stdoutHandler
}

// reportError delivers error to nearest configured OnError callback.
// Errors with no callback anywhere in the chain are dropped, logging
// failure must never escape into unrelated caller code.
func (l *Logger) reportError(err error) {
	for cur := l; cur != nil; cur = cur.parent {
		if cur.onError != nil {
			cur.onError(err)
			return
		}
	}
}

// fatalCallback returns nearest configured OnFatal callback.
func (l *Logger) fatalCallback() func(Record) {
	for cur := l; cur != nil; cur = cur.parent {
		if cur.onFatal != nil {
			return cur.onFatal
		}
	}
	return nil
}

func (l *Logger) shouldProcessLevel(level Level) bool {
	return l.level <= level
}

// emit resolves context, builds record and hands it to handler. Level
// filtering already happened, so cost of full context resolution is paid
// only for records that will actually be processed.
func (l *Logger) emit(level Level, message string, extra []Field) {
	record := Record{
		Time:    time.Now().UTC(),
		Level:   level,
		Message: message,
		Logger:  l.fullName,
		Fields:  mergeFields(l.context.ResolveAll(), extra),
	}
	if err := l.effectiveHandler().Handle(record); err != nil {
		swe, ok := err.(*SinkWriteError)
		if !ok {
			swe = &SinkWriteError{Logger: l.fullName, Err: err}
		}
		l.reportError(swe)
	}
	if level >= FATAL {
		if cb := l.fatalCallback(); cb != nil {
			cb(record)
		}
	}
}

// mergeFields appends per-call fields to resolved context fields.
// Per-call field overrides context field with same key and takes its own
// position, same as if it was set in one more context layer.
func mergeFields(base, extra []Field) []Field {
	if len(extra) == 0 {
		return base
	}
	pos := make(map[string]int, len(base))
	for i, f := range base {
		pos[f.Key] = i
	}
	for _, f := range extra {
		if j, ok := pos[f.Key]; ok {
			base = append(base[:j], base[j+1:]...)
			for k := j; k < len(base); k++ {
				pos[base[k].Key] = k
			}
		}
		pos[f.Key] = len(base)
		base = append(base, f)
	}
	return base
}

// pairFields converts alternating key-value parameters to fields.
// Pairs with unsupported value types are reported through error callback
// and skipped, the rest of the record still goes out.
func (l *Logger) pairFields(pairs []interface{}) []Field {
	if len(pairs) == 0 {
		return nil
	}
	if len(pairs)%2 != 0 {
		pairs = append(pairs, "")
	}
	fields := make([]Field, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			key = fmt.Sprint(pairs[i])
		}
		v, err := valueOf(pairs[i+1])
		if err != nil {
			l.reportError(errors.Wrapf(err, "logger %q: key %q", l.fullName, key))
			continue
		}
		fields = append(fields, Field{Key: key, Value: v})
	}
	return fields
}

// ctxFields converts Ctx map to fields, in sorted key order.
func (l *Logger) ctxFields(ctx Ctx) []Field {
	if len(ctx) == 0 {
		return nil
	}
	fields := make([]Field, 0, len(ctx))
	for _, key := range sortedKeys(ctx) {
		v, err := valueOf(ctx[key])
		if err != nil {
			l.reportError(errors.Wrapf(err, "logger %q: key %q", l.fullName, key))
			continue
		}
		fields = append(fields, Field{Key: key, Value: v})
	}
	return fields
}

func sortedKeys(ctx Ctx) []string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Log emits record with provided level and message. Any additional
// parameters are interpreted as alternating keys and values that are
// appended to record after logger's context, in order in which they were
// provided. Odd trailing key gets empty string value. Example:
//
//	l.Log(INFO, "User logged in", "user_id", userID, "platform", platformName)
//
// renders as
//
//	[<ts>] [INFO] User logged in user_id=42 platform=linux
func (l *Logger) Log(level Level, message string, pairs ...interface{}) {
	if levelName(level) == "" {
		l.reportError(errors.Wrapf(ErrUnknownLevel, "rank %d", uint(level)))
		return
	}
	if !l.shouldProcessLevel(level) {
		return
	}
	l.emit(level, message, l.pairFields(pairs))
}

// LogCtx emits record with provided level, message and context values.
func (l *Logger) LogCtx(level Level, message string, ctx Ctx) {
	if levelName(level) == "" {
		l.reportError(errors.Wrapf(ErrUnknownLevel, "rank %d", uint(level)))
		return
	}
	if !l.shouldProcessLevel(level) {
		return
	}
	l.emit(level, message, l.ctxFields(ctx))
}

// LogNamed emits record with level resolved from provided name.
// ErrUnknownLevel is returned if name is not a registered level name.
func (l *Logger) LogNamed(name, message string, pairs ...interface{}) error {
	level, err := LevelFromName(name)
	if err != nil {
		return err
	}
	l.Log(level, message, pairs...)
	return nil
}

// Debug emits record with DEBUG level.
// Additional parameters have same semantics as in Log method.
func (l *Logger) Debug(message string, pairs ...interface{}) {
	l.Log(DEBUG, message, pairs...)
}

// DebugCtx emits record in DEBUG level with provided context.
func (l *Logger) DebugCtx(message string, ctx Ctx) {
	l.LogCtx(DEBUG, message, ctx)
}

// Info emits record with INFO level.
// Additional parameters have same semantics as in Log method.
func (l *Logger) Info(message string, pairs ...interface{}) {
	l.Log(INFO, message, pairs...)
}

// InfoCtx emits record in INFO level with provided context.
func (l *Logger) InfoCtx(message string, ctx Ctx) {
	l.LogCtx(INFO, message, ctx)
}

// Warn emits record with WARN level.
// Additional parameters have same semantics as in Log method.
func (l *Logger) Warn(message string, pairs ...interface{}) {
	l.Log(WARN, message, pairs...)
}

// WarnCtx emits record in WARN level with provided context.
func (l *Logger) WarnCtx(message string, ctx Ctx) {
	l.LogCtx(WARN, message, ctx)
}

// Error emits record with ERROR level.
// Additional parameters have same semantics as in Log method.
func (l *Logger) Error(message string, pairs ...interface{}) {
	l.Log(ERROR, message, pairs...)
}

// ErrorCtx emits record in ERROR level with provided context.
func (l *Logger) ErrorCtx(message string, ctx Ctx) {
	l.LogCtx(ERROR, message, ctx)
}

// Fatal emits record with FATAL level and then invokes OnFatal callback
// if one is configured on this logger or any of its ancestors. Process
// is never terminated by logger itself.
func (l *Logger) Fatal(message string, pairs ...interface{}) {
	l.Log(FATAL, message, pairs...)
}

// FatalCtx emits record in FATAL level with provided context.
func (l *Logger) FatalCtx(message string, ctx Ctx) {
	l.LogCtx(FATAL, message, ctx)
}

// IsDebug returns true if logger will process messages in DEBUG level
func (l *Logger) IsDebug() bool {
	return l.shouldProcessLevel(DEBUG)
}

// IsInfo returns true if logger will process messages in INFO level
func (l *Logger) IsInfo() bool {
	return l.shouldProcessLevel(INFO)
}

// IsWarn returns true if logger will process messages in WARN level
func (l *Logger) IsWarn() bool {
	return l.shouldProcessLevel(WARN)
}

// IsError returns true if logger will process messages in ERROR level
func (l *Logger) IsError() bool {
	return l.shouldProcessLevel(ERROR)
}

// IsFatal returns true if logger will process messages in FATAL level
func (l *Logger) IsFatal() bool {
	return l.shouldProcessLevel(FATAL)
}

// IsLevel returns true if logger will process messages in provided level.
func (l *Logger) IsLevel(level Level) bool {
	return l.shouldProcessLevel(level)
}
