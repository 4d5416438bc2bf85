package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/fider-contrib/fider-mcp/internal/paths"
)

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load resolves the configuration from the default config file location and
// the process environment. Environment variables win over file values.
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom resolves the configuration from a specific config file path and the
// process environment. A missing file is not an error; the environment and
// built-in defaults still apply.
func LoadFrom(path string) (*Config, error) {
	file, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return resolve(file, envCfg), nil
}

func loadFile(path string) (fileConfig, error) {
	var file fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return file, nil
		}
		return file, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parsing config %s: %w", path, err)
	}

	file.BaseURL = expandEnvVars(file.BaseURL)
	file.APIKey = expandEnvVars(file.APIKey)
	for k, v := range file.Headers {
		file.Headers[k] = expandEnvVars(v)
	}
	return file, nil
}

func resolve(file fileConfig, envCfg envConfig) *Config {
	baseURL := firstNonEmpty(envCfg.BaseURL, envCfg.AltBaseURL, file.BaseURL, DefaultBaseURL)

	cfg := &Config{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  firstNonEmpty(envCfg.APIKey, file.APIKey),
	}
	if len(file.Headers) > 0 {
		cfg.Headers = make(map[string]string, len(file.Headers))
		for k, v := range file.Headers {
			cfg.Headers[k] = v
		}
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// expandEnvVars replaces ${VAR_NAME} with the value of the environment
// variable, leaving unresolved placeholders as-is.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRe.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}
