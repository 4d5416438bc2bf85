package config

// DefaultBaseURL is the placeholder used when no Fider instance is configured.
// Requests against it will fail, but the server still starts so tools/list and
// the protocol handshake keep working.
const DefaultBaseURL = "https://your-fider-instance.com"

// Config is the resolved fider-mcp configuration. It is built once at startup
// and never mutated afterwards; every handler reads the same value.
type Config struct {
	// BaseURL is the Fider instance root, without a trailing slash.
	BaseURL string
	// APIKey is forwarded as a bearer credential when non-empty.
	APIKey string
	// Headers are extra HTTP headers applied to every outbound request.
	Headers map[string]string
}

// fileConfig is the on-disk TOML shape.
type fileConfig struct {
	BaseURL string            `toml:"base_url"`
	APIKey  string            `toml:"api_key"`
	Headers map[string]string `toml:"headers"`
}

// envConfig mirrors the environment variables the original server reads.
// FIDER_BASE_URL wins over the legacy FIDER_URL alias.
type envConfig struct {
	BaseURL    string `env:"FIDER_BASE_URL"`
	AltBaseURL string `env:"FIDER_URL"`
	APIKey     string `env:"FIDER_API_KEY"`
}
