package pmclient

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", defaultConfig(), false},
		{"production", Config{Environment: EnvProduction, ProdBaseURL: "https://api.example.edu"}, false},
		{"unknown environment", Config{Environment: "staging", DevBaseURL: "http://localhost:8000"}, true},
		{"empty base", Config{Environment: EnvDevelopment}, true},
		{"bad scheme", Config{DevBaseURL: "ftp://files.example.edu"}, true},
		{"no host", Config{DevBaseURL: "http://"}, true},
		{"negative timeout", Config{DevBaseURL: "http://localhost:8000", Timeout: -time.Second}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigBaseURL(t *testing.T) {
	cfg := Config{
		Environment: EnvProduction,
		DevBaseURL:  "http://localhost:8000",
		ProdBaseURL: "https://api.example.edu/",
	}
	if got := cfg.BaseURL(); got != "https://api.example.edu" {
		t.Fatalf("BaseURL() = %q, want trailing slash trimmed", got)
	}

	cfg.Environment = EnvDevelopment
	if got := cfg.BaseURL(); got != "http://localhost:8000" {
		t.Fatalf("BaseURL() = %q, want the dev origin", got)
	}
}

func TestBuilderDefaultsAndReuse(t *testing.T) {
	b := New().WithCredentials(&memCredentials{})
	client, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if client.BaseURL() != defaultDevBaseURL {
		t.Fatalf("BaseURL() = %q, want %q", client.BaseURL(), defaultDevBaseURL)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("second Build() on a consumed builder succeeded")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	_, err := New().
		WithConfig(Config{DevBaseURL: "ftp://nope"}).
		WithCredentials(&memCredentials{}).
		Build()
	if err == nil {
		t.Fatal("Build() accepted an invalid base URL")
	}
}
