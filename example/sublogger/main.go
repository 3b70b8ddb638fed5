package main

import (
	"fmt"
	"os"

	"github.com/delicb/lumen"
)

func main() {
	// Create new logger with some context and handlers.
	svc, err := lumen.GetLoggerOptions("svc", lumen.LoggerOptions{
		Context: lumen.Ctx{"request_id": "abc123"},
		Handler: lumen.StreamHandler(os.Stdout, lumen.JSONFormat(true)),
		Level:   lumen.INFO,
		OnError: func(err error) {
			fmt.Fprintln(os.Stderr, "logging failure:", err)
		},
		OnFatal: func(r lumen.Record) {
			// termination decision belongs here, not in the logger
			fmt.Fprintln(os.Stderr, "fatal record emitted:", r.Message)
		},
	})
	if err != nil {
		panic(err)
	}

	// Sub-logger inherits context of its parent; its own values override
	// parent values of same key. This will result in records in following
	// format:
	//	{
	//	    "time": "2026-01-07T01:06:10.937122038Z",
	//	    "level": "INFO",
	//	    "message": "executed",
	//	    "context": {
	//	        "request_id": "abc123",
	//	        "query": "SELECT 1"
	//	    }
	//	}
	db, err := svc.SubLoggerOptions("db", lumen.LoggerOptions{
		Context: lumen.Ctx{"query": "SELECT 1"},
		Level:   lumen.INFO,
	})
	if err != nil {
		panic(err)
	}
	db.Info("executed")

	// Log message in DEBUG level, which will be ignored since this logger
	// is configured to log only INFO messages and above.
	db.Debug("Will be discarded.")

	// Derived logger shares context but has its own threshold.
	quiet := db.WithLevel(lumen.ERROR)
	quiet.Info("Also discarded.")
	quiet.Error("This one goes out.")
}
