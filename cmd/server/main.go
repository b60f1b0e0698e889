package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/marketfee-next/internal/app"
	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	modeFlag := flag.String("mode", app.ModeAll, "运行模式: all | api | worker")
	flag.Parse()

	mode, err := app.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("marketfee-next  service fee engine  mode=%s\n", mode)

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer func() { _ = logger.Sync() }()
	stdLog := logger.StdLogger()

	if err := initDatabase(cfg); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

// initDatabase 打开连接并迁移全部表
func initDatabase(cfg *config.Config) error {
	pool := cfg.Database.Pool
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           pool.MaxOpenConns,
		MaxIdleConns:           pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: pool.ConnMaxIdleTimeSeconds,
	}, cfg.Server.Mode != gin.ReleaseMode); err != nil {
		return err
	}
	if err := models.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
