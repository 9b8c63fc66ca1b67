package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"contact": map[string]any{
			"maxPageSize": 100,
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "CONTACT_MAXPAGESIZE", want: "contact.maxPageSize"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.NotNil(t, cfg.Auth)
	if assert.NotNil(t, cfg.Contact) {
		assert.Equal(t, 1, cfg.Contact.DefaultPageSize)
		assert.Equal(t, 100, cfg.Contact.MaxPageSize)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Contact: &ContactConfig{DefaultPageSize: 50, MaxPageSize: 20},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 20, cfg.Contact.MaxPageSize)
	assert.Equal(t, 20, cfg.Contact.DefaultPageSize, "default page size is capped by the max")
}

func TestLoad_FileWithEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := []byte(`
env:
  serviceName: contacts
http:
  port: 3000
  timeouts:
    readTimeout: 5s
contact:
  maxPageSize: 100
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), yaml, 0o600))

	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("CONTACT_MAXPAGESIZE", "50")

	cfg, err := Load[Config]("config", ".", "config")
	require.NoError(t, err)

	assert.Equal(t, "contacts", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	if assert.NotNil(t, cfg.Contact) {
		assert.Equal(t, 50, cfg.Contact.MaxPageSize)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load[Config]("config", ".", "config")
	assert.ErrorContains(t, err, "config file config.yaml not found")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "port out of range", mutate: func(cfg *Config) { cfg.HTTP.Port = 70000 }, wantErr: "http.port"},
		{name: "bcrypt cost too high", mutate: func(cfg *Config) { cfg.Auth.BcryptCost = 40 }, wantErr: "auth.bcryptCost"},
		{name: "unknown pubsub provider", mutate: func(cfg *Config) { cfg.PubSub = &PubSubConfig{Provider: "kafka"} }, wantErr: "pubsub.provider"},
		{name: "local pubsub provider", mutate: func(cfg *Config) { cfg.PubSub = &PubSubConfig{Provider: "local"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := replicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
