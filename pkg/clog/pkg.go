// Package clog configures the apex/log default logger used by the attackd
// server and the attackctl CLI.
package clog

import (
	"io"

	"github.com/apex/log"
)

// Setup routes the default logger to w at the given level ("debug", "info",
// "warn", "error" or "fatal"). An empty level means info.
func Setup(w io.Writer, level string) error {
	if level == "" {
		level = "info"
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	log.SetHandler(NewHandler(w))
	log.SetLevel(lvl)

	return nil
}
