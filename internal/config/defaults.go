package config

// DefaultConfig returns a Config with sensible defaults: a backend on
// localhost:8000 and the console on localhost:8990.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "http://localhost:8000",
		Port:           8990,
		NResults:       5,
		TimeoutSeconds: 0,
	}
}
