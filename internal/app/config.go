package app

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel    string // debug, info, warn, error
	JSONLog     bool   // structured JSON instead of console output
	NoReference bool   // skip the reference cross-check (degraded runs)
}
