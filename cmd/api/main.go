package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ahmedyasserjs010/CoursesSite/internal/core/config"
	"github.com/ahmedyasserjs010/CoursesSite/internal/core/logger"
	"github.com/ahmedyasserjs010/CoursesSite/internal/core/server"
	"github.com/ahmedyasserjs010/CoursesSite/internal/service"
	"github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	log, cleanup := newLogger(cfg)
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	// 模拟后端实例（进程内唯一，两个引擎共享）
	api := service.New(service.Options{Logger: log})
	api.SetLatency(time.Duration(cfg.Sim.LatencyMs) * time.Millisecond)
	api.SetFailureRate(cfg.Sim.FailureRate)
	log.Info("mock backend ready",
		zap.Duration("latency", api.Latency()),
		zap.Float64("failure_rate", api.FailureRate()),
	)

	apiSrv := server.BuildServer(
		server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port),
		router.NewAPIEngine(log, api),
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	adminSrv := server.BuildServer(
		server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port),
		router.NewAdminEngine(log, api),
		15*time.Second, 15*time.Second, 60*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("mock api starting",
		zap.String("addr", apiSrv.Addr),
		zap.String("open", baseURL),
		zap.String("api_v1", baseURL+"/api/v1"),
		zap.String("admin", adminSrv.Addr),
	)

	start := func(name string, srv *http.Server) {
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(name+" start FAILED", zap.Error(err))
			}
		}()
	}
	start("mock api", apiSrv)
	start("sim admin", adminSrv)
	log.Info("mock api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(ctx)
	_ = adminSrv.Shutdown(ctx)
	log.Info("mock api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File == "" {
		return logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
}
