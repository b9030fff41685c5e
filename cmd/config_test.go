package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mypodinfo/adapters/kube"
	"mypodinfo/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"REDIS_ADDR", "CONFIG_PATH", "WEB_ROOT", "SERVICE_PORT_GRPC", "SESSION_TTL",
		"KUBERNETES_NAMESPACE", "CONFIGMAP_NAME", "KUBE_TOKEN_PATH"} {
		t.Setenv(k, "")
	}
	for _, k := range []string{"EVENTBUS_INBOUND_PERMITTED", "EVENTBUS_OUTBOUND_PERMITTED"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "conf/config.yaml", cfg.ConfigPath)
	assert.Equal(t, "webroot", cfg.WebRoot)
	assert.Equal(t, 5001, cfg.GRPCPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, kube.DefaultNamespace, cfg.KubeNamespace)
	assert.Equal(t, "podinfo", cfg.KubeConfigMapName)
	assert.Equal(t, kube.DefaultTokenPath, cfg.KubeTokenPath)
	assert.Equal(t, []string{".*"}, cfg.BridgeInboundPermitted)
	assert.Equal(t, []string{".*"}, cfg.BridgeOutboundPermitted)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis://other:6380")
	t.Setenv("CONFIG_PATH", "/etc/podinfo.yaml")
	t.Setenv("WEB_ROOT", "/srv/www")
	t.Setenv("SERVICE_PORT_GRPC", "6001")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("KUBERNETES_NAMESPACE", "demo")
	t.Setenv("CONFIGMAP_NAME", "podinfo-config")
	t.Setenv("KUBE_TOKEN_PATH", "/tmp/token")
	t.Setenv("EVENTBUS_INBOUND_PERMITTED", "")
	t.Setenv("EVENTBUS_OUTBOUND_PERMITTED", "status, chat\\..+")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "redis://other:6380", cfg.Redis.Addr)
	assert.Equal(t, "/etc/podinfo.yaml", cfg.ConfigPath)
	assert.Equal(t, "/srv/www", cfg.WebRoot)
	assert.Equal(t, 6001, cfg.GRPCPort)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "demo", cfg.KubeNamespace)
	assert.Equal(t, "podinfo-config", cfg.KubeConfigMapName)
	assert.Equal(t, "/tmp/token", cfg.KubeTokenPath)
	assert.Empty(t, cfg.BridgeInboundPermitted)
	assert.Equal(t, []string{"status", "chat\\..+"}, cfg.BridgeOutboundPermitted)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "grpc port", env: map[string]string{"SERVICE_PORT_GRPC": "abc"}, wantErr: "invalid SERVICE_PORT_GRPC"},
		{name: "session ttl", env: map[string]string{"SESSION_TTL": "soon"}, wantErr: "invalid SESSION_TTL"},
		{name: "negative session ttl", env: map[string]string{"SESSION_TTL": "-1m"}, wantErr: "SESSION_TTL must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SERVICE_PORT_GRPC", "")
			t.Setenv("SESSION_TTL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is empty", func(t *testing.T) {
		got, err := LoadConfigFile(filepath.Join(dir, "absent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("values", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("appname: Demo\nport: 8081\norigin: http://example.com\n"), 0o600))

		got, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, domain.Configuration{"appname": "Demo", "port": 8081, "origin": "http://example.com"}, got)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		got, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0o600))

		_, err := LoadConfigFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config file")
	})
}
