package config

import (
	"strings"
	"testing"
)

func TestValidateAcceptsResolvedConfig(t *testing.T) {
	cfg := &Config{
		BaseURL: "https://feedback.example.com",
		APIKey:  "key",
		Headers: map[string]string{"X-Tenant": "acme"},
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidateRejectsRelativeBaseURL(t *testing.T) {
	err := Validate(&Config{BaseURL: "feedback.example.com"})
	if err == nil {
		t.Fatal("Validate() error = nil, want base_url error")
	}
	if !strings.Contains(err.Error(), "base_url") {
		t.Fatalf("Validate() error = %q, want mention of base_url", err)
	}
}

func TestValidateRejectsBlankHeaderName(t *testing.T) {
	cfg := &Config{
		BaseURL: "https://feedback.example.com",
		Headers: map[string]string{" ": "value"},
	}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() error = nil, want header error")
	}
	if !strings.Contains(err.Error(), "blank header name") {
		t.Fatalf("Validate() error = %q, want blank header name error", err)
	}
}

func TestValidateNilConfigIsNoop(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Fatalf("Validate(nil) error = %v, want nil", err)
	}
}
