// main is the entry point of the constructor-inside-class demo.
//
// Builds a Student from literal values and prints it.
//
// RUNNING:
//
//	go run ./cmd/constructor-inside-class
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

	if err := demo.ConstructorInsideClass(os.Stdout); err != nil {
		log.Error("constructor-inside-class failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
