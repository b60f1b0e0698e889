package app

import (
	"errors"
	"net"

	"github.com/marketfee-next/internal/cache"
	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/provider"
	"github.com/marketfee-next/internal/router"
	"github.com/marketfee-next/internal/worker"
)

// BuildRunner 按运行模式组装 HTTP 与快照 worker
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	parsed, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	opts := Options{Config: cfg, Mode: parsed}

	container := provider.NewContainer(cfg)
	var services []Service
	if opts.runsHTTP() {
		services = append(services, NewHTTPService(listenAddr(cfg), router.SetupRouter(cfg, container)))
	}
	if opts.runsWorker() {
		workerService, err := worker.NewService(&cfg.Queue, worker.NewConsumer(container))
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	} else if parsed == ModeAll {
		// 队列未启用时快照在完成订单的请求内同步写入
		logger.Infow("app_worker_skipped_queue_disabled", "snapshot_async", cfg.ServiceFee.SnapshotAsync)
	}

	runner := NewRunner(services...)
	runner.OnShutdown(container.QueueClient.Close)
	runner.OnShutdown(cache.Close)
	return runner, nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}
	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}
	opts.Logger.Infow("app_start", "addr", listenAddr(opts.Config), "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}

func listenAddr(cfg *config.Config) string {
	return net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
}
