package smoke

import "os"

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Fabcar Smoke Tool
=================

Drives a running fabcar front end through every view and checks the results.
It creates cars, so point it at a development ledger (see cmd/ledger-stub).

Usage:
  go run ./cmd/smoke [options]

Options:
  -url string
        Base URL of the front end (default "http://localhost:8080")
  -cars int
        Number of cars to create (default 20)
  -workers int
        Number of concurrent workers (default 4)
  -timeout duration
        HTTP request timeout (default 10s)
  -verbose
        Log every created car
  -help
        Show this help message
`)
}
