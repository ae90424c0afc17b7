package domain

import "time"

// Timeout and duration constants
const (
	// DefaultHTTPClientTimeout bounds every outbound API call. The upstream
	// request itself carries no deadline, so the client timeout is the only
	// thing standing between a hung provider and a hung invocation.
	DefaultHTTPClientTimeout = 60 * time.Second
	// SpinnerInterval is the cadence of the progress spinner poll loop.
	SpinnerInterval = 100 * time.Millisecond
)

// Time formats
const (
	// LogTimestampFormat is the local-time stamp used in call log lines.
	LogTimestampFormat = "2006-01-02 15:04:05"
)
