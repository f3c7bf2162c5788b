package config

import (
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
		"backend": map[string]any{
			"baseUrl":     "",
			"readRetries": 0,
		},
		"geo": map[string]any{
			"matchRadiusMeters": 100,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "BACKEND_READRETRIES", want: "backend.readRetries"},
		{envKey: "GEO_MATCHRADIUSMETERS", want: "geo.matchRadiusMeters"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Backend)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.InDelta(t, 100, cfg.Geo.MatchRadiusMeters, 0)
	assert.Equal(t, 10*time.Second, cfg.Capture.CameraTimeout)
	assert.Equal(t, 2*time.Hour, cfg.Capture.SessionTTL)
	assert.Equal(t, "memory", cfg.Store.Provider)
	assert.Equal(t, defaultPhotoMaxWidth, cfg.Export.PhotoMaxWidth)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Backend: &BackendConfig{Timeout: 5 * time.Second, ReadRetries: 3},
		Geo:     &GeoConfig{MatchRadiusMeters: 250},
		Store:   &StoreConfig{Provider: "redis"},
	}
	applyDefaults(cfg)

	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 3, cfg.Backend.ReadRetries)
	assert.InDelta(t, 250, cfg.Geo.MatchRadiusMeters, 0)
	assert.Equal(t, "redis", cfg.Store.Provider)
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	require.NoError(t, loadDotEnv(t.TempDir()+"/.env"))
}
