// Package main is the entry point for the hue-crypto-cli application.
// It builds the command tree (AES-GCM, HMAC-SHA256, SHA-256 and hex helpers)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vchlum/hue-lights-sub001/cmd/hue-crypto-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd, err := commands.NewRootCmd()
	if err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
