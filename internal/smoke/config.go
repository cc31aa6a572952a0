// Package smoke drives a running fabcar front end the way a browser does and
// checks the round-trip behaviour of every view.
package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL string        // Base URL of the front end
	NumCars int           // Number of cars to create
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every request
}

// Stats holds run statistics.
type Stats struct {
	CarsGenerated  int
	CarsSubmitted  int
	CarsVerified   int
	CarsMissing    int
	OwnersChanged  int
	OwnersFailed   int
	ListedCars     int
	AbsentVerified bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
