package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Worker.HTTP.Port != defaultWorkerPort {
		t.Fatalf("Worker port = %d, want %d", cfg.Worker.HTTP.Port, defaultWorkerPort)
	}
	if !cfg.Fanout.MatchBloodType || !cfg.Fanout.ActiveOnly {
		t.Fatalf("fanout defaults should match blood type and active donors only")
	}
	if cfg.Fanout.ClaimLease != defaultClaimLease {
		t.Fatalf("ClaimLease = %s, want %s", cfg.Fanout.ClaimLease, defaultClaimLease)
	}
	if cfg.Sweeps.Timezone != defaultSweepTimezone {
		t.Fatalf("Timezone = %q, want %q", cfg.Sweeps.Timezone, defaultSweepTimezone)
	}
	if cfg.Sweeps.UnverifiedRetention != 48*time.Hour {
		t.Fatalf("UnverifiedRetention = %s, want 48h", cfg.Sweeps.UnverifiedRetention)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults returned %v", err)
	}
}

func TestValidate_RejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "unknown pubsub provider", mutate: func(cfg *Config) { cfg.PubSub.Provider = "kafka" }},
		{name: "unknown timezone", mutate: func(cfg *Config) { cfg.Sweeps.Timezone = "Mars/Olympus" }},
		{name: "bad schedule", mutate: func(cfg *Config) { cfg.Sweeps.OrphanMessagesAt = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() returned nil, want error")
			}
		})
	}
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"fanout": map[string]any{"claimLease": "5m"},
		"worker": map[string]any{
			"pushAuth": map[string]any{"serviceAccountEmail": ""},
		},
	}

	tests := map[string]string{
		"FANOUT_CLAIMLEASE":                       "fanout.claimLease",
		"WORKER_PUSHAUTH_SERVICEACCOUNTEMAIL":     "worker.pushAuth.serviceAccountEmail",
		"WORKER_PUSHAUTH_NEWSETTING":              "worker.pushAuth.newsetting",
		"FANOUT__CLAIMLEASE":                      "fanout.claimLease",
		"SWEEPS_ENABLED":                          "sweeps.enabled",
		"FANOUT_CLAIMLEASE_UNEXPECTED_CHILDREN_X": "fanout.claimLease.unexpected.children.x",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(envKey, existing); got != want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", envKey, got, want)
			}
		})
	}
}

func TestLoadWithEnv_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "fanout:\n  inline: false\n  claimLease: 5m\nsweeps:\n  orphanMessagesAt: \"05:25\"\n"
	if err := os.WriteFile(filepath.Join(dir, "loadtest.yaml"), []byte(yamlBody), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Chdir(dir)
	t.Setenv("FANOUT_CLAIMLEASE", "90s")
	t.Setenv("FANOUT_INLINE", "true")

	cfg, err := LoadWithEnv[Config]("loadtest", ".")
	if err != nil {
		t.Fatalf("LoadWithEnv() returned %v", err)
	}

	if cfg.Fanout == nil || !cfg.Fanout.Inline {
		t.Fatalf("fanout.inline was not overridden by FANOUT_INLINE")
	}
	if cfg.Fanout.ClaimLease != 90*time.Second {
		t.Fatalf("ClaimLease = %s, want 1m30s", cfg.Fanout.ClaimLease)
	}
	if cfg.Sweeps == nil || cfg.Sweeps.OrphanMessagesAt != "05:25" {
		t.Fatalf("sweeps.orphanMessagesAt was not read from the file")
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("absent", "."); err == nil {
		t.Fatalf("LoadWithEnv() returned nil, want error")
	}
}
