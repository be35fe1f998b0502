package main

import (
	"fmt"
	"os"

	"taskman/internal/cli"
	"taskman/internal/config"
)

func main() {
	// Load configuration with the cascading strategy
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Build and run the CLI
	root := cli.NewRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
