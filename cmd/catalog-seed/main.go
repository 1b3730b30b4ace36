// Package main seeds the portal's SQLite tenant catalog from a JSON file
// or the built-in demo data.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/brandgate/brandgate/internal/cmd/catalogseed"
	"github.com/brandgate/brandgate/internal/platform/config"
)

func main() {
	cfg, err := catalogseed.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := catalogseed.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
