package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/config"
	"github.com/SiGNAL-Team/server/internal/repository"
	"github.com/SiGNAL-Team/server/internal/upstream"
	"github.com/SiGNAL-Team/server/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth              AuthService
	Semester          SemesterService
	Catalog           CatalogService
	ScheduleSync      ScheduleSyncService
	ScheduleReconcile ScheduleReconcileService
	Section           SectionService
	Course            CourseService
	Reference         ReferenceService
	Location          LocationService
	Export            ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	catalog *upstream.CatalogClient,
	jw *upstream.JWClient,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	timezone *time.Location,
	logger *zap.Logger,
) *Service {
	reconcile := NewScheduleReconcileService(repo, logger)
	return &Service{
		Auth:              NewAuthService(cfg, jwtMgr, blacklist, logger),
		Semester:          NewSemesterService(repo, catalog, logger),
		Catalog:           NewCatalogService(repo, catalog, logger),
		ScheduleSync:      NewScheduleSyncService(repo, jw, reconcile, cfg.Fetch.BatchSize, logger),
		ScheduleReconcile: reconcile,
		Section:           NewSectionService(repo, logger),
		Course:            NewCourseService(repo, logger),
		Reference:         NewReferenceService(repo, logger),
		Location:          NewLocationService(repo, logger),
		Export:            NewExportService(repo, timezone, logger),
	}
}
