package db

import "time"

// Database connection constants
const (
	// connectionRetrySleep is the sleep duration between connection retries
	connectionRetrySleep = 2 * time.Second
	// maxConnectionRetries is the number of retries for initial connection
	maxConnectionRetries = 10
)
