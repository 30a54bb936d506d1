package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv(BaseURLEnvVar, "")

	cfg := Load()
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.UserAgent != UserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, UserAgent)
	}
}

func TestLoadBaseURLOverride(t *testing.T) {
	t.Setenv(BaseURLEnvVar, "https://staging.betahub.example")

	cfg := Load()
	if cfg.BaseURL != "https://staging.betahub.example/" {
		t.Errorf("BaseURL = %q, want trailing slash appended", cfg.BaseURL)
	}
}

func TestAPIURL(t *testing.T) {
	cfg := &Config{BaseURL: "https://app.betahub.io/", UserAgent: UserAgent}

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{
			name:     "relative endpoint",
			endpoint: "projects.json",
			want:     "https://app.betahub.io/projects.json",
		},
		{
			name:     "leading slash stripped",
			endpoint: "/auth/verify",
			want:     "https://app.betahub.io/auth/verify",
		},
		{
			name:     "absolute endpoint passthrough",
			endpoint: "https://other.example/x.json",
			want:     "https://other.example/x.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.APIURL(tt.endpoint); got != tt.want {
				t.Errorf("APIURL(%q) = %q, want %q", tt.endpoint, got, tt.want)
			}
		})
	}
}
