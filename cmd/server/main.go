package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/stocklens/internal/app"
	"github.com/stocklens/internal/cache"
	"github.com/stocklens/internal/config"
	"github.com/stocklens/internal/logger"
	"github.com/stocklens/internal/models"
	"github.com/stocklens/internal/provider"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiCyan   = "\033[36m"
	bannerLine = "--------------------------------------------------------------"
)

func main() {
	var migrateOnly bool
	var configPath string
	flag.BoolVar(&migrateOnly, "migrate", false, "仅执行数据库迁移后退出")
	flag.StringVar(&configPath, "config", "", "配置文件目录（默认 . / ./etc / ../）")
	flag.Parse()

	printStartupBanner()

	// 加载配置
	var searchPaths []string
	if configPath != "" {
		searchPaths = append(searchPaths, configPath)
	}
	cfg, err := config.Load(searchPaths...)
	if err != nil {
		fatal("config_load_failed", err)
	}
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	db, err := models.OpenDB(models.DBOptions{
		Driver: models.NormalizeDriver(cfg.Database.Driver),
		DSN:    cfg.Database.DSN,
		Pool: models.DBPoolConfig{
			MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
		},
		Logger:        logger.Z(),
		SlowThreshold: time.Duration(cfg.Database.SlowThresholdMS) * time.Millisecond,
		Debug:         cfg.Server.Mode == "debug",
	})
	if err != nil {
		fatal("database_open_failed", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(db); err != nil {
		fatal("database_migrate_failed", err)
	}
	if migrateOnly {
		logger.Infow("database_migrated", "driver", models.NormalizeDriver(cfg.Database.Driver))
		return
	}

	redisClient := cache.NewRedis(&cfg.Redis)
	if redisClient.Enabled() {
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx); err != nil {
			logger.Warnw("redis_ping_failed", "error", err)
		}
		cancel()
		defer redisClient.Close()
	} else {
		logger.Infow("redis_disabled", "effect", "bulk rate limit off")
	}

	container := provider.NewContainer(cfg, db, redisClient)
	if err := app.Run(app.Options{
		Config:    cfg,
		Container: container,
		Logger:    logger.S(),
		Signals:   []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		fatal("app_run_failed", err)
	}
}

func fatal(event string, err error) {
	logger.Errorw(event, "error", err)
	logger.Sync()
	os.Exit(1)
}

func printStartupBanner() {
	fmt.Println(ansiCyan + ansiBold + "StockLens API" + ansiReset)
	fmt.Println(ansiGreen + "products · sell-in · sell-through · analytics" + ansiReset)
	fmt.Println(ansiDim + bannerLine + ansiReset)
}
