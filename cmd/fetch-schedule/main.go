package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/config"
	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/internal/upstream"
	"github.com/SiGNAL-Team/server/pkg/database"
	applogger "github.com/SiGNAL-Team/server/pkg/logger"
	"github.com/SiGNAL-Team/server/pkg/redis"
)

// fetch-schedule 从教务系统拉取逐次排课（datum 接口）并协调入库。
// 接口需要登录态 Cookie，通过 --cookie 或 SIGNAL_FETCH_COOKIE 传入。
// 默认同步最近开始的学期；--semester 指定学期代码；--all 同步全部学期。
func main() {
	var (
		configPath   = flag.String("config", "", "配置文件路径（默认搜索 ./config）")
		semesterCode = flag.String("semester", "", "学期代码，如 2024-fall")
		all          = flag.Bool("all", false, "同步全部学期")
		cookie       = flag.String("cookie", "", "教务系统登录 Cookie（默认取 SIGNAL_FETCH_COOKIE）")
		quiet        = flag.Bool("quiet", false, "仅输出告警及以上日志")
		logLevel     = flag.String("log-level", "", "覆盖配置中的日志级别")
	)
	flag.Parse()

	if *cookie == "" {
		*cookie = os.Getenv("SIGNAL_FETCH_COOKIE")
	}
	if *cookie == "" {
		fmt.Fprintln(os.Stderr, "缺少教务系统 Cookie：请使用 --cookie 或设置 SIGNAL_FETCH_COOKIE")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *quiet {
		cfg.Log.Level = "warn"
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}
	defer sqlDB.Close()

	var cache upstream.Cache
	if rdb, err := redis.NewClient(&cfg.Redis, logger); err != nil {
		logger.Warn("Redis 连接失败，上游缓存不可用", zap.Error(err))
	} else {
		cache = rdb
		defer rdb.Close()
	}

	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	upClient := upstream.NewClient(httpClient, cache, cfg.Upstream.CacheTTL, cfg.Upstream.UserAgent, logger)
	jw := upstream.NewJWClient(upClient, cfg.Upstream.JWBaseURL, *cookie)

	repo := repository.NewRepository(db)
	semesterSvc := service.NewSemesterService(repo, nil, logger)
	reconcileSvc := service.NewScheduleReconcileService(repo, logger)
	syncSvc := service.NewScheduleSyncService(repo, jw, reconcileSvc, cfg.Fetch.BatchSize, logger)

	ctx := context.Background()

	var targets []model.Semester
	switch {
	case *all:
		list, err := repo.Semester.List(ctx)
		if err != nil {
			logger.Fatal("读取学期列表失败", zap.Error(err))
		}
		targets = list
	case *semesterCode != "":
		semester, err := semesterSvc.SelectByCode(ctx, *semesterCode)
		if err != nil {
			logger.Fatal("选择学期失败", zap.String("code", *semesterCode), zap.Error(err))
		}
		targets = []model.Semester{*semester}
	default:
		semester, err := semesterSvc.MostRecent(ctx)
		if err != nil {
			logger.Fatal("选择最近学期失败", zap.Error(err))
		}
		targets = []model.Semester{*semester}
	}

	start := time.Now()
	for i := range targets {
		semester := &targets[i]
		logger.Info("开始同步学期排课",
			zap.String("semester", semester.Code),
			zap.String("name", semester.Name),
		)
		stats, err := syncSvc.SyncSemester(ctx, semester)
		if err != nil {
			logger.Error("学期排课同步失败", zap.String("semester", semester.Code), zap.Error(err))
			continue
		}
		logger.Info("学期排课同步完成",
			zap.String("semester", semester.Code),
			zap.Int("sections", stats.Sections),
			zap.Int("batches", stats.Batches),
			zap.Int("failed_batches", stats.FailedBatch),
			zap.Int("processed", stats.Processed),
			zap.Int("missing", stats.Missing),
			zap.Int("section_errors", stats.SectionError),
		)
	}
	logger.Info("全部同步完成", zap.Duration("elapsed", time.Since(start)))
}
