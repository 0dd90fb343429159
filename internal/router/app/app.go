package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpHandler "github.com/anthanhphan/go-stream-router/internal/router/adapter/inbound/http"
	"github.com/anthanhphan/go-stream-router/internal/router/adapter/outbound/directory"
	"github.com/anthanhphan/go-stream-router/internal/router/adapter/outbound/timer"
	"github.com/anthanhphan/go-stream-router/internal/router/config"
	"github.com/anthanhphan/go-stream-router/internal/router/service"
	"github.com/anthanhphan/go-stream-router/pkg/hashkey"
	"github.com/anthanhphan/go-stream-router/pkg/resilience"
	"github.com/anthanhphan/gosdk/logger"
)

type App struct {
	cfg       *config.Config
	server    *httpHandler.Server
	shardMap  *service.ShardMap
	directory *directory.GrpcAdapter
	executor  *resilience.WorkerPool
}

func New(configPath string) (*App, error) {
	// 1. Load Config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Stream.Name == "" {
		return nil, fmt.Errorf("stream name is required")
	}

	// 2. Initialize Logger
	logger.InitLogger(&cfg.Logger)

	// 3. Partition-key hashing
	hasher, err := hashkey.New(hashkey.Algorithm(cfg.Stream.HashAlgorithm))
	if err != nil {
		return nil, fmt.Errorf("failed to init hasher: %w", err)
	}

	// 4. Outbound adapters
	directoryAdapter := directory.NewGrpcAdapter(cfg.Directory.Addr)
	scheduler := timer.NewScheduler()
	executor := resilience.NewWorkerPool(2, 4)

	// 5. Shard map
	shardMap := service.NewShardMap(service.Config{
		StreamName:     cfg.Stream.Name,
		StreamARN:      cfg.Stream.ARN,
		MinBackoff:     time.Duration(cfg.Stream.MinBackoffMs) * time.Millisecond,
		MaxBackoff:     time.Duration(cfg.Stream.MaxBackoffMs) * time.Millisecond,
		ClosedShardTTL: time.Duration(cfg.Stream.ClosedShardTTLMs) * time.Millisecond,
		PageLimit:      cfg.Stream.PageLimit,
	}, directoryAdapter, scheduler, nil, executor)

	// 6. HTTP Server
	httpServer := httpHandler.NewServer(cfg, shardMap, hasher)

	return &App{
		cfg:       cfg,
		server:    httpServer,
		shardMap:  shardMap,
		directory: directoryAdapter,
		executor:  executor,
	}, nil
}

func (a *App) Run() error {
	// Start the shard map (first directory fetch + reaper loop)
	a.shardMap.Start()

	// Start HTTP
	logger.Infow("Stream router starting", "addr", a.cfg.Server.Addr, "stream", a.cfg.Stream.Name)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			serverErrCh <- err
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case sig := <-stop:
		logger.Infow("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrCh:
		runErr = fmt.Errorf("http server failed: %w", err)
		logger.Errorw("Router server exited unexpectedly", "error", err.Error())
	}

	logger.Info("Shutting down router")
	if err := a.server.Stop(context.Background()); err != nil {
		logger.Errorw("Router shutdown error", "error", err.Error())
		if runErr == nil {
			runErr = err
		}
	}
	a.shardMap.Close()
	a.executor.Close()
	a.executor.Wait()
	if err := a.directory.Close(); err != nil {
		logger.Warnw("Directory client close error", "error", err.Error())
	}

	return runErr
}
