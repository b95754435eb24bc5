package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("SLIDES_MCP_ADDR")
	os.Unsetenv("SLIDES_MCP_PUBLIC_URL")
	os.Unsetenv("SLIDES_MCP_STDIO")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.PublicURL != "" {
		t.Errorf("PublicURL = %q, want empty", cfg.PublicURL)
	}
	if cfg.Stdio {
		t.Error("Stdio should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	os.Setenv("SLIDES_MCP_ADDR", ":9999")
	os.Setenv("SLIDES_MCP_PUBLIC_URL", "https://slides.example.com")
	os.Setenv("SLIDES_MCP_STDIO", "true")
	defer os.Unsetenv("SLIDES_MCP_ADDR")
	defer os.Unsetenv("SLIDES_MCP_PUBLIC_URL")
	defer os.Unsetenv("SLIDES_MCP_STDIO")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if !cfg.Stdio {
		t.Error("Stdio should be true")
	}

	base, err := cfg.BaseURL()
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if base.String() != "https://slides.example.com" {
		t.Errorf("BaseURL = %q", base)
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantNil bool
		wantErr bool
	}{
		{"unset", "", true, false},
		{"absolute", "https://slides.example.com", false, false},
		{"relative", "/just-a-path", false, true},
		{"missing scheme", "slides.example.com", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{PublicURL: tt.url}
			base, err := cfg.BaseURL()
			if (err != nil) != tt.wantErr {
				t.Fatalf("BaseURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantNil && base != nil {
				t.Errorf("BaseURL() = %v, want nil", base)
			}
		})
	}
}
