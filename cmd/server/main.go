package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/config"
	"github.com/SiGNAL-Team/server/internal/api/handler"
	"github.com/SiGNAL-Team/server/internal/api/router"
	"github.com/SiGNAL-Team/server/internal/repository"
	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/internal/upstream"
	"github.com/SiGNAL-Team/server/pkg/database"
	"github.com/SiGNAL-Team/server/pkg/jwt"
	applogger "github.com/SiGNAL-Team/server/pkg/logger"
	"github.com/SiGNAL-Team/server/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	logger.Info("数据库连接成功")

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，
	// 上游响应缓存与 Token 黑名单不可用，不中断启动）
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，上游缓存与 Token 黑名单功能将不可用", zap.Error(err))
		rdb = nil
	}

	// 5. 初始化 JWT 管理器
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 上游客户端（教务目录 + 教务系统）
	var cache upstream.Cache
	var blacklist service.TokenBlacklist
	if rdb != nil {
		cache = rdb
		blacklist = rdb
	}
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	upClient := upstream.NewClient(httpClient, cache, cfg.Upstream.CacheTTL, cfg.Upstream.UserAgent, logger)
	catalog := upstream.NewCatalogClient(upClient, cfg.Upstream.CatalogBaseURL)
	// Web 端不带教务 Cookie，排课同步由 fetch-schedule 命令完成
	jw := upstream.NewJWClient(upClient, cfg.Upstream.JWBaseURL, "")

	// 7. 日历时区（Validate 已校验过）
	tz, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		logger.Fatal("加载日历时区失败", zap.Error(err))
	}

	// 8. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, catalog, jw, jwtMgr, blacklist, tz, logger)
	h := handler.NewHandler(svc)

	// 9. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 10. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 11. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
