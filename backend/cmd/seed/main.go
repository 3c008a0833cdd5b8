package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Chandana0048/campus-event-management/backend/config"
	"github.com/Chandana0048/campus-event-management/backend/internal/repository"
	"github.com/Chandana0048/campus-event-management/backend/internal/seed"
	"github.com/Chandana0048/campus-event-management/backend/internal/service"
	"github.com/Chandana0048/campus-event-management/backend/pkg/database"
	applogger "github.com/Chandana0048/campus-event-management/backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	fakeCount := flag.Int("fake", 0, "额外生成的随机学生数")
	fakeSeed := flag.Uint64("seed", 0, "随机数种子（0 表示随机）")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Feature.EnforceReferences, applogger.GormLevel(cfg.Log.Level), logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	if err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	svc := service.NewService(cfg, repository.NewRepository(db), nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	base, err := seed.Load(ctx, svc, time.Now(), logger)
	if err != nil {
		logger.Fatal("写入样例数据失败", zap.Error(err))
	}

	if *fakeCount > 0 {
		if _, err := seed.Fake(ctx, svc, base, *fakeCount, *fakeSeed, logger); err != nil {
			logger.Fatal("写入随机数据失败", zap.Error(err))
		}
	}

	if sqlDB, _ := db.DB(); sqlDB != nil {
		sqlDB.Close()
	}
}
