package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/health/grpc_health_v1"

	"dev.rubentxu.step7-service/internal/adapters/grpc/protos/step7"
	"dev.rubentxu.step7-service/internal/adapters/grpc/server"
	adminhttp "dev.rubentxu.step7-service/internal/adapters/http"
	"dev.rubentxu.step7-service/internal/adapters/logger"
	"dev.rubentxu.step7-service/internal/adapters/store"
	"dev.rubentxu.step7-service/internal/adapters/tool"
	"dev.rubentxu.step7-service/internal/config"
	"dev.rubentxu.step7-service/internal/core/usecase"
	"dev.rubentxu.step7-service/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "config file (YAML or TOML); defaults to $"+config.EnvConfigPath)
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("s7server %s (%s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(logger.Options{Level: cfg.Logging.Level, Development: cfg.Logging.Development})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	// 1. Herramienta de ingeniería y diario de llamadas
	step7Tool, err := tool.New(tool.Config{
		Backend: tool.Backend(cfg.Tool.Backend),
		Exec: tool.ExecConfig{
			Command: cfg.Tool.Command,
			Args:    cfg.Tool.Args,
			WorkDir: cfg.Tool.WorkDir,
		},
	}, log)
	if err != nil {
		log.Fatal("unable to create tool backend", "error", err)
	}

	journal, err := store.NewJournal(store.Config{
		Type:     store.JournalType(cfg.Journal.Type),
		Path:     cfg.Journal.Path,
		Capacity: cfg.Journal.Capacity,
	}, log)
	if err != nil {
		log.Fatal("unable to open call journal", "error", err)
	}
	defer func() { _ = journal.Close() }()

	// 2. Casos de uso
	dispatcher := usecase.NewDispatcher(step7Tool, log, usecase.DispatcherConfig{
		ListTimeout:   cfg.Tool.ListTimeoutDuration(),
		ActionTimeout: cfg.Tool.ActionTimeoutDuration(),
		MaxConcurrent: cfg.Tool.MaxConcurrent,
	}, journal)

	// 3. Servidor gRPC
	grpcServer, healthServer := server.NewGRPCServer(dispatcher, log)
	lis, err := net.Listen("tcp", cfg.Server.ListenAddress())
	if err != nil {
		log.Fatal("unable to listen", "address", cfg.Server.ListenAddress(), "error", err)
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("step7 service listening", "address", lis.Addr().String(), "backend", cfg.Tool.Backend, "version", version.Version)
		errCh <- grpcServer.Serve(lis)
	}()

	// 4. API de administración opcional
	var adminServer *http.Server
	if cfg.Server.AdminPort > 0 {
		gin.SetMode(gin.ReleaseMode)
		adminServer = &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.AdminPort)),
			Handler:           adminhttp.NewRouter(journal, log),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("admin API listening", "address", adminServer.Addr)
			if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		log.Error("server stopped unexpectedly", "error", err)
	}

	healthServer.SetServingStatus(step7.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if adminServer != nil {
		if err := adminServer.Shutdown(ctx); err != nil {
			log.Warn("admin API shutdown failed", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		log.Warn("graceful stop timed out, forcing")
		grpcServer.Stop()
	}
	log.Info("step7 service stopped")
}
