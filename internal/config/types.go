package config

// Config is the top-level ragview configuration, corresponding to
// .ragview.yml.
type Config struct {
	// BaseURL is where the scraper/RAG backend listens.
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	// Port is the local web console's listen port.
	Port int `yaml:"port" koanf:"port"`
	// NResults is how many retrieved chunks each chat query asks for.
	NResults int `yaml:"n_results" koanf:"n_results"`
	// TimeoutSeconds bounds each backend request. Zero disables the
	// client-side timeout and leaves lifetime to the request context.
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	// AllowAllOrigins opens the console's CORS policy (dev mode).
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
