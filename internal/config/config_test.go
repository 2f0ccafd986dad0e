package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("http addr: got %q", cfg.HTTPAddr)
	}
	if cfg.Model != "llama3.1" || cfg.TopK != 100 {
		t.Errorf("model options: %q/%d", cfg.Model, cfg.TopK)
	}
	if cfg.AutoStart {
		t.Error("auto start should default off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("MODEL", "llama3.2")
	t.Setenv("TOP_K", "40")
	t.Setenv("AUTO_START", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":9999" || cfg.Model != "llama3.2" || cfg.TopK != 40 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.AutoStart {
		t.Error("auto start override not applied")
	}
}

func TestLoadRejectsBadTopK(t *testing.T) {
	t.Setenv("TOP_K", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("TOP_K", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TopK != 100 {
		t.Errorf("topK: got %d, want fallback 100", cfg.TopK)
	}
}
