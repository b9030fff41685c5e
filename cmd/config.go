package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"mypodinfo/adapters/kube"
	"mypodinfo/adapters/myredis"
	"mypodinfo/domain"

	"gopkg.in/yaml.v3"
)

// MyPodInfoConfig holds process settings read from the environment.
// Application settings (origin, port, appname, broadcastIntervalMs) live in the config file and ConfigMap.
type MyPodInfoConfig struct {
	Redis      myredis.RedisConfig
	ConfigPath string
	WebRoot    string
	GRPCPort   int
	SessionTTL time.Duration

	KubeNamespace     string
	KubeConfigMapName string
	KubeTokenPath     string

	BridgeInboundPermitted  []string
	BridgeOutboundPermitted []string
}

// LoadConfig loads configuration from environment variables. Every variable is optional.
func LoadConfig() (*MyPodInfoConfig, error) {
	config := &MyPodInfoConfig{
		Redis:                   myredis.RedisConfig{Addr: "redis://localhost:6379"},
		ConfigPath:              "conf/config.yaml",
		WebRoot:                 "webroot",
		GRPCPort:                5001,
		SessionTTL:              30 * time.Minute,
		KubeNamespace:           kube.DefaultNamespace,
		KubeConfigMapName:       "podinfo",
		KubeTokenPath:           kube.DefaultTokenPath,
		BridgeInboundPermitted:  []string{".*"},
		BridgeOutboundPermitted: []string{".*"},
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.Redis.Addr = v
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		config.ConfigPath = v
	}
	if v := os.Getenv("WEB_ROOT"); v != "" {
		config.WebRoot = v
	}

	if v := os.Getenv("SERVICE_PORT_GRPC"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_GRPC: %w", err)
		}
		config.GRPCPort = port
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SESSION_TTL must be positive")
		}
		config.SessionTTL = d
	}

	if v := os.Getenv("KUBERNETES_NAMESPACE"); v != "" {
		config.KubeNamespace = v
	}
	if v := os.Getenv("CONFIGMAP_NAME"); v != "" {
		config.KubeConfigMapName = v
	}
	if v := os.Getenv("KUBE_TOKEN_PATH"); v != "" {
		config.KubeTokenPath = v
	}

	if v, ok := os.LookupEnv("EVENTBUS_INBOUND_PERMITTED"); ok {
		config.BridgeInboundPermitted = splitList(v)
	}
	if v, ok := os.LookupEnv("EVENTBUS_OUTBOUND_PERMITTED"); ok {
		config.BridgeOutboundPermitted = splitList(v)
	}

	return config, nil
}

func splitList(v string) []string {
	out := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// LoadConfigFile reads the YAML application config at path.
// A missing file yields an empty configuration; a malformed one is an error.
func LoadConfigFile(path string) (domain.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Configuration{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if config == nil {
		config = domain.Configuration{}
	}
	return config, nil
}
