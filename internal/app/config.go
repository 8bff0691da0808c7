package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SuitesPath string // .hcl suite files, a single file or a directory

	LogFormat string
	LogLevel  string
	NoColor   bool
}

// NewConfig validates a Config and returns it. The suites path may be empty
// only when the caller supplies an already-populated registry.
func NewConfig(cfg Config) (*Config, error) {
	// Future validations for other fields can be added here.
	return &cfg, nil
}
