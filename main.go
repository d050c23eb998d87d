// Package main is the entry point for the cremita CLI.
package main

import (
	"fmt"
	"os"

	"github.com/paulinagorecka/cremita/cmd"
	"github.com/paulinagorecka/cremita/internal/logging"
)

func main() {
	logging.Debug("starting cremita", "log_level", logging.LevelFromEnv())

	if err := cmd.Execute(); err != nil {
		logging.Debug("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
