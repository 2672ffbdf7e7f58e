package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/MikeSquared-Agency/VendorEval/internal/cli"
)

// Set via ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()

	app := cli.New()
	app.SetVersion(version)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
