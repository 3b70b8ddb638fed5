package lumen

// Log emits record through root logger with provided level and message.
// Any additional parameters are interpreted as alternating keys and
// values, in order in which they were provided. Example:
//
//	lumen.Log(lumen.INFO, "User logged in", "user_id", userID, "platform", platformName)
//
// renders as
//
//	[<ts>] [INFO] User logged in user_id=42 platform=linux
func Log(level Level, message string, pairs ...interface{}) {
	rootLogger.Log(level, message, pairs...)
}

// LogCtx emits record through root logger with provided context.
func LogCtx(level Level, message string, ctx Ctx) {
	rootLogger.LogCtx(level, message, ctx)
}

// Debug emits record with DEBUG level through root logger.
// Additional parameters have same semantics as in Log function.
func Debug(message string, pairs ...interface{}) {
	rootLogger.Log(DEBUG, message, pairs...)
}

// DebugCtx emits record in DEBUG level with provided context.
func DebugCtx(message string, ctx Ctx) {
	rootLogger.LogCtx(DEBUG, message, ctx)
}

// Info emits record with INFO level through root logger.
// Additional parameters have same semantics as in Log function.
func Info(message string, pairs ...interface{}) {
	rootLogger.Log(INFO, message, pairs...)
}

// InfoCtx emits record in INFO level with provided context.
func InfoCtx(message string, ctx Ctx) {
	rootLogger.LogCtx(INFO, message, ctx)
}

// Warn emits record with WARN level through root logger.
// Additional parameters have same semantics as in Log function.
func Warn(message string, pairs ...interface{}) {
	rootLogger.Log(WARN, message, pairs...)
}

// WarnCtx emits record in WARN level with provided context.
func WarnCtx(message string, ctx Ctx) {
	rootLogger.LogCtx(WARN, message, ctx)
}

// Error emits record with ERROR level through root logger.
// Additional parameters have same semantics as in Log function.
func Error(message string, pairs ...interface{}) {
	rootLogger.Log(ERROR, message, pairs...)
}

// ErrorCtx emits record in ERROR level with provided context.
func ErrorCtx(message string, ctx Ctx) {
	rootLogger.LogCtx(ERROR, message, ctx)
}

// Fatal emits record with FATAL level through root logger and invokes
// root OnFatal callback if one is configured. Process is never
// terminated by logger itself.
func Fatal(message string, pairs ...interface{}) {
	rootLogger.Log(FATAL, message, pairs...)
}

// FatalCtx emits record in FATAL level with provided context.
func FatalCtx(message string, ctx Ctx) {
	rootLogger.LogCtx(FATAL, message, ctx)
}

// Set adds key-value pair to root logger's context, so it shows up in
// records of all loggers that do not override it.
func Set(key string, value interface{}) error {
	return rootLogger.Set(key, value)
}

// SetHandler sets new handler for root logger.
func SetHandler(handler Handler) {
	rootLogger.SetHandler(handler)
}
