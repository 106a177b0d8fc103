// Package main is the entry point for the lettergrade CLI.
package main

import (
	"github.com/joho/godotenv"

	"github.com/blackwell-systems/lettergrade/internal/app"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	// A .env in the working directory may carry LETTERGRADE_* overrides.
	_ = godotenv.Load()

	app.SetVersion(version)
	app.Execute()
}
