package lumen

import (
	"encoding/json"
	"time"

	"github.com/valyala/bytebufferpool"
)

// Field is one resolved context entry of log record.
type Field struct {
	Key   string
	Value Value
}

// Record is immutable snapshot of one event that occurred and that needs
// to be logged. It is created once per emit call, after logger's context
// chain has been resolved, and is never mutated afterwards.
type Record struct {
	// Time is moment when record was created, in UTC.
	Time time.Time
	// Level is severity of record.
	Level Level
	// Message is event description provided by caller.
	Message string
	// Logger is full name of logger that created record.
	Logger string
	// Fields is merged view of logger's context chain plus values
	// provided with emit call, in deterministic render order.
	Fields []Field
}

// MarshalJSON serializes record to JSON, keeping context keys in resolved
// order (implementation of json.Marshaler).
func (r Record) MarshalJSON() ([]byte, error) {
	buff := bytebufferpool.Get()
	defer bytebufferpool.Put(buff)

	buff.WriteString(`{"time":`)
	writeJSON(buff, r.Time)
	buff.WriteString(`,"level":`)
	writeJSON(buff, r.Level)
	buff.WriteString(`,"message":`)
	writeJSON(buff, r.Message)
	buff.WriteString(`,"context":{`)
	for i, f := range r.Fields {
		if i > 0 {
			buff.WriteByte(',')
		}
		writeJSON(buff, f.Key)
		buff.WriteByte(':')
		writeJSON(buff, f.Value.Interface())
	}
	buff.WriteString("}}")

	out := make([]byte, buff.Len())
	copy(out, buff.Bytes())
	return out, nil
}

// writeJSON appends JSON form of v to buffer. Values that reach it are
// all marshalable, but in case of marshal failure null is written since
// serialization of log record must not fail.
func writeJSON(buff *bytebufferpool.ByteBuffer, v interface{}) {
	d, err := json.Marshal(v)
	if err != nil {
		buff.WriteString("null")
		return
	}
	buff.Write(d)
}
