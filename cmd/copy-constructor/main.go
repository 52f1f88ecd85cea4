// main is the entry point of the copy-constructor demo.
//
// Builds a Person, prints it, copies it with Person.Copy and prints the
// copy.
//
// RUNNING:
//
//	go run ./cmd/copy-constructor
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/constructor-demos/internal/config"
	"github.com/aanand-mishra/constructor-demos/internal/demo"
	"github.com/aanand-mishra/constructor-demos/internal/logger"
)

func main() {
	cfg := config.MustLoad()

	// stderr keeps log lines out of the demo output on stdout.
	log := logger.New(cfg, os.Stderr)
	slog.SetDefault(log)

	if err := demo.CopyConstructor(os.Stdout); err != nil {
		log.Error("copy-constructor failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
