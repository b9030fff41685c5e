package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"mypodinfo/adapters/kube"
	"mypodinfo/adapters/myredis"
	"mypodinfo/domain"
	"mypodinfo/handlers"
	"mypodinfo/interfaces"
	"mypodinfo/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	eventBusChannelPrefix = "eventbus"
	memberCachePrefix     = "member"
	obtainCounterTimeout  = 5 * time.Second
	shutdownTimeout       = 10 * time.Second
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	instanceID := domain.InstanceID(uuid.NewString())
	logger = log.With(logger, "instance", instanceID)

	level.Info(logger).Log("msg", "Starting MyPodInfo service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	fileConfig, err := LoadConfigFile(config.ConfigPath)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration file", "err", err)
		os.Exit(1)
	}
	configStore := service.NewConfigStore(domain.DefaultConfiguration(), fileConfig, logger)
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"config_path", config.ConfigPath,
		"port", configStore.Int(domain.ConfigPort, 8080),
		"service_port_grpc", config.GRPCPort,
		"redis_addr", config.Redis.Addr,
		"web_root", config.WebRoot,
	)

	now := func() time.Time {
		return time.Now().UTC()
	}

	redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	counter := myredis.NewClusterCounter(redisClient, domain.CounterKey)

	var sessions interfaces.SessionStore = myredis.NewSessionStore(redisClient, config.SessionTTL)
	var bus interfaces.EventBus = myredis.NewEventBus(redisClient, eventBusChannelPrefix, logger)
	var memberCache interfaces.Cache[domain.Member] = myredis.NewJSONCache[domain.Member](redisClient, memberCachePrefix)

	readiness := &service.Readiness{}
	members := service.NewMembers(instanceID, memberCache, configStore, now, logger)

	var e *echo.Echo
	{
		podInfo := service.NewPodInfoService(instanceID, sessions, counter, logger)
		httpServer := handlers.NewHTTPServer(podInfo, members, readiness, logger)

		bridge, err := handlers.NewEventBusBridge(bus, handlers.BridgeOptions{
			InboundPermitted:  config.BridgeInboundPermitted,
			OutboundPermitted: config.BridgeOutboundPermitted,
		}, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create event bus bridge", "err", err)
			os.Exit(1)
		}

		e, err = handlers.NewRouter(httpServer, bridge, sessions, handlers.RouterConfig{
			WebRoot:      config.WebRoot,
			Origin:       func() string { return configStore.String(domain.ConfigOrigin, "") },
			NewSessionID: uuid.NewString,
		}, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create HTTP router", "err", err)
			os.Exit(1)
		}
	}

	grpcServer, _ := handlers.NewGrpcHealthServer(readiness)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		background   sync.WaitGroup
		watcherDone  <-chan struct{}
		httpListener net.Listener
	)
	err = runStartup(ctx, logger, []startupStep{
		{name: "bind_http", run: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", configStore.Int(domain.ConfigPort, 8080))
			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			httpListener = lis
			return nil
		}},
		{name: "obtain_counter", run: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, obtainCounterTimeout)
			defer cancel()
			return counter.Obtain(ctx)
		}},
		{name: "serve_http", run: func(ctx context.Context) error {
			e.Listener = httpListener
			go func() {
				level.Info(logger).Log("msg", "Starting HTTP server", "addr", httpListener.Addr())
				if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
					level.Error(logger).Log("msg", "HTTP server error", "err", err)
				}
			}()
			return nil
		}},
		{name: "serve_grpc", run: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
			if err != nil {
				return fmt.Errorf("listen grpc: %w", err)
			}
			go func() {
				level.Info(logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr())
				if err := grpcServer.Serve(lis); err != nil {
					level.Error(logger).Log("msg", "gRPC server error", "err", err)
				}
			}()
			return nil
		}},
		{name: "arm_broadcaster", run: func(ctx context.Context) error {
			interval := configStore.Duration(domain.ConfigBroadcastIntervalMs, time.Millisecond, service.DefaultBroadcastInterval)
			broadcaster := service.NewStatusBroadcaster(instanceID, counter, configStore, bus, interval, logger)
			background.Add(1)
			go func() {
				defer background.Done()
				broadcaster.Run(ctx)
			}()
			level.Info(logger).Log("msg", "Status broadcaster armed", "interval", interval)
			return nil
		}},
		{name: "attach_config_watcher", run: func(ctx context.Context) error {
			source := kube.NewConfigMapSource(config.KubeTokenPath, config.KubeNamespace, config.KubeConfigMapName, kube.InClusterClient, logger)
			watcherDone = configStore.AttachExternalWatcher(ctx, source)
			return nil
		}},
		{name: "start_heartbeat", run: func(ctx context.Context) error {
			background.Add(1)
			go func() {
				defer background.Done()
				members.Run(ctx)
			}()
			return nil
		}},
		{name: "mark_ready", run: func(ctx context.Context) error {
			readiness.MarkReady()
			return nil
		}},
	})
	if err != nil {
		level.Error(logger).Log("msg", "Startup failed", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "MyPodInfo service ready")

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	grpcServer.GracefulStop()

	background.Wait()
	<-watcherDone

	level.Info(logger).Log("msg", "Server stopped")
}
