//go:build !windows && !nacl && !plan9

package lumen

import (
	"log/syslog"

	"github.com/pkg/errors"
)

// syslogHandler sends all messages to local syslog server.
type syslogHandler struct {
	formatter Formatter
	writer    *syslog.Writer
}

// SyslogHandler creates new syslog handler that formats records with
// provided formatter and tags them with tag.
func SyslogHandler(formatter Formatter, tag string, priority syslog.Priority) (Handler, error) {
	writer, err := syslog.New(priority, tag)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to syslog")
	}
	return &syslogHandler{
		formatter: formatter,
		writer:    writer,
	}, nil
}

// Handle passes all messages to syslog server. Record levels are
// translated to syslog compatible priorities.
func (sh *syslogHandler) Handle(record Record) error {
	msg := sh.formatter.Format(record)
	switch record.Level {
	case DEBUG:
		return sh.writer.Debug(msg)
	case INFO:
		return sh.writer.Info(msg)
	case WARN:
		return sh.writer.Warning(msg)
	case ERROR:
		return sh.writer.Err(msg)
	case FATAL:
		return sh.writer.Crit(msg)
	default:
		return sh.writer.Info(msg)
	}
}

// Close closes connection with syslog server.
func (sh *syslogHandler) Close() {
	sh.writer.Close()
}
