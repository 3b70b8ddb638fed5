package lumen

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Formatter is interface for converting log record to string representation.
type Formatter interface {
	Format(record Record) string
}

// defaultTimeFormat is formatting string for record timestamps.
const defaultTimeFormat = "2006-01-02 15:04:05.000"

// lineFormatter converts log record to single text line in form
//
//	[timestamp] [LEVEL] message key=value key2=value2
//
// Theme only wraps timestamp and level tokens in escape sequences, so
// output of themed and plain formatter is identical once escape sequences
// are stripped.
type lineFormatter struct {
	theme Theme
}

// SimpleFormat returns formatter that produces plain log lines without
// any escape sequences.
func SimpleFormat() Formatter {
	return &lineFormatter{theme: NoColorTheme}
}

// TerminalFormat returns formatter that produces log lines colorized for
// terminal display using default theme.
func TerminalFormat() Formatter {
	return &lineFormatter{theme: DefaultTheme}
}

// ThemedFormat returns formatter that produces log lines colorized with
// provided theme.
func ThemedFormat(theme Theme) Formatter {
	return &lineFormatter{theme: theme}
}

// Format converts provided log record to format suitable for printing in one line.
func (lf *lineFormatter) Format(record Record) string {
	buff := bytebufferpool.Get()
	defer bytebufferpool.Put(buff)

	colorize := lf.theme.ForLevel(record.Level)
	buff.WriteString(lf.theme.Time("[%s]", record.Time.Format(defaultTimeFormat)))
	buff.WriteByte(' ')
	buff.WriteString(colorize("[%s]", record.Level.String()))
	buff.WriteByte(' ')
	buff.WriteString(record.Message)
	for _, f := range record.Fields {
		buff.WriteByte(' ')
		buff.WriteString(f.Key)
		buff.WriteByte('=')
		buff.WriteString(f.Value.String())
	}
	return buff.String()
}

// jsonFormatter marshals log record to JSON.
type jsonFormatter struct {
	pretty bool
}

// JSONFormat returns formatter that serializes whole record to JSON,
// indented if pretty is true.
func JSONFormat(pretty bool) Formatter {
	return &jsonFormatter{pretty: pretty}
}

// Format returns JSON representation of provided record.
func (jf *jsonFormatter) Format(record Record) string {
	var d []byte
	var err error
	if jf.pretty {
		d, err = json.MarshalIndent(record, "", "    ")
	} else {
		d, err = json.Marshal(record)
	}
	if err != nil {
		// formatting log record must never fail
		return fmt.Sprintf("%+v", record)
	}
	return string(d)
}
