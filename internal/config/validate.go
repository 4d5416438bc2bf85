package config

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Validate checks configuration invariants and returns actionable errors.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	var errs []error

	u, err := url.Parse(cfg.BaseURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("base_url: invalid URL %q: %w", cfg.BaseURL, err))
	case !u.IsAbs() || u.Host == "":
		errs = append(errs, fmt.Errorf("base_url: %q is not an absolute http(s) URL", cfg.BaseURL))
	}

	names := make([]string, 0, len(cfg.Headers))
	for name := range cfg.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("headers: blank header name %q", name))
		}
	}

	return errors.Join(errs...)
}
