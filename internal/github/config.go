package github

import "time"

// Config holds fetch configuration for the GitHub commit source.
type Config struct {
	Branch                string
	Since                 *time.Time
	Until                 *time.Time
	MaxConcurrentRequests int
	PerPage               int
	ShowProgress          bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		MaxConcurrentRequests: 5,
		PerPage:               100,
		ShowProgress:          true,
	}
}
