// Package lumen is small synchronous logging library for golang with
// colorized output and inheritable key-value context.
//
// Loggers form a tree addressed by dotted names (GetLogger("svc.db") is
// child of GetLogger("svc")). Every logger owns a Context, an ordered set
// of key-value pairs; child contexts fall back to their parent on lookup,
// so values set on a parent logger show up in records emitted by all of
// its descendants, while writes always stay local to the logger they were
// made on.
//
// Log records are rendered to single text line in form
//
//	[2006-01-02 15:04:05.000] [LEVEL] message key=value key2=value2
//
// with level and timestamp colorized when output supports it. Disabling
// color never changes content of the line, only its decoration.
package lumen
