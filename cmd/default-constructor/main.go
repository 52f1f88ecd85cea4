// main is the entry point of the default-constructor demo.
//
// Reads a Student's name, roll number and fee from stdin, then prints it.
//
// RUNNING:
//
//	go run ./cmd/default-constructor
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

	if err := demo.DefaultConstructor(os.Stdin, os.Stdout); err != nil {
		log.Error("default-constructor failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
