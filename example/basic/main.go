package main

import (
	"fmt"
	"os"

	"github.com/delicb/lumen"
)

func main() {
	lumen.SetHandler(lumen.StreamHandler(os.Stdout, lumen.TerminalFormat()))
	err := fmt.Errorf("some error")
	lumen.Error("Something bad happened", "reason", err.Error())
	lumen.Info("But life goes on", "attempt", 2, "ratio", 0.5, "ok", true)
}
