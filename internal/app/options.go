package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/logger"

	"go.uber.org/zap"
)

// 运行模式
const (
	ModeAll    = "all"    // HTTP + 快照 worker（队列启用时）
	ModeAPI    = "api"    // 仅 HTTP
	ModeWorker = "worker" // 仅快照 worker
)

const defaultShutdownTimeout = 10 * time.Second

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// ParseMode 解析运行模式，空值视为 all
func ParseMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "":
		return ModeAll, nil
	case ModeAll, ModeAPI, ModeWorker:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown run mode %q", raw)
	}
}

func (o Options) runsHTTP() bool {
	return o.Mode == ModeAll || o.Mode == ModeAPI
}

func (o Options) runsWorker() bool {
	if o.Mode == ModeWorker {
		return true
	}
	return o.Mode == ModeAll && o.Config != nil && o.Config.Queue.Enabled
}

// normalizeOptions 补齐默认参数；非法模式保留原值交由 BuildRunner 报错
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}
	if mode, err := ParseMode(opts.Mode); err == nil {
		opts.Mode = mode
	}
	return opts
}
