// main is the entry point of the parameterized-constructor demo.
//
// Reads a day, month and year from stdin, builds a Date from them and
// prints it.
//
// RUNNING:
//
//	go run ./cmd/parameterized-constructor
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

	if err := demo.ParameterizedConstructor(os.Stdin, os.Stdout); err != nil {
		log.Error("parameterized-constructor failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
