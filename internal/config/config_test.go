package config

import "testing"

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		Webhook:   Webhook{URL: "https://hooks.example.com/promocast"},
		Scheduler: Scheduler{FailureThreshold: 5},
	}
	if err := validateConfig(valid); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	// Empty webhook URL is allowed; delivery commands check it themselves.
	noURL := &Config{Scheduler: Scheduler{FailureThreshold: 1}}
	if err := validateConfig(noURL); err != nil {
		t.Errorf("config without webhook URL rejected: %v", err)
	}

	badScheme := &Config{
		Webhook:   Webhook{URL: "ftp://hooks.example.com"},
		Scheduler: Scheduler{FailureThreshold: 5},
	}
	if err := validateConfig(badScheme); err == nil {
		t.Error("non-http webhook URL accepted")
	}

	badThreshold := &Config{
		Webhook:   Webhook{URL: "https://hooks.example.com"},
		Scheduler: Scheduler{FailureThreshold: 0},
	}
	if err := validateConfig(badThreshold); err == nil {
		t.Error("zero failure threshold accepted")
	}
}
