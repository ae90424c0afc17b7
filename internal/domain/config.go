package domain

// Config holds the per-invocation configuration, resolved once at startup
// from the config file and environment and passed down explicitly. Nothing
// re-reads the process environment after this is built.
type Config struct {
	// Provider selects which upstream API serves this invocation.
	Provider Provider
	// LogPath is the append-only call log file. Empty disables logging.
	LogPath string
	// OpenAI and Claude carry the endpoint and generation parameters for
	// each implemented provider; both are always hydrated with defaults so
	// switching providers never needs a config edit.
	OpenAI ModelDefinition
	Claude ModelDefinition
}
