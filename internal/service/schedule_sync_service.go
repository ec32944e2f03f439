package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
	"github.com/SiGNAL-Team/server/internal/upstream"
)

// ── 排课同步模块业务错误 ──

var ErrNoSections = errors.New("学期内没有已导入的开课")

// ScheduleDatumFetcher 排课同步依赖的上游接口
type ScheduleDatumFetcher interface {
	FetchScheduleDatum(ctx context.Context, lessonIDs []int64) (*upstream.DatumResult, error)
}

// SyncStats 一个学期排课同步的累计统计
type SyncStats struct {
	Sections     int `json:"sections"`
	Batches      int `json:"batches"`
	FailedBatch  int `json:"failed_batches"`
	Processed    int `json:"processed"`
	Missing      int `json:"missing"`
	SectionError int `json:"section_errors"`
}

// ScheduleSyncService 排课同步业务接口
//
// 按教务 ID 降序分批请求上游，批间相互隔离：某批请求或
// 协调失败只记入统计，后续批照常进行
type ScheduleSyncService interface {
	SyncSemester(ctx context.Context, semester *model.Semester) (*SyncStats, error)
}

type scheduleSyncService struct {
	repo      *repository.Repository
	fetcher   ScheduleDatumFetcher
	reconcile ScheduleReconcileService
	batchSize int
	logger    *zap.Logger
}

// NewScheduleSyncService 创建 ScheduleSyncService 实例
func NewScheduleSyncService(
	repo *repository.Repository,
	fetcher ScheduleDatumFetcher,
	reconcile ScheduleReconcileService,
	batchSize int,
	logger *zap.Logger,
) ScheduleSyncService {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &scheduleSyncService{
		repo:      repo,
		fetcher:   fetcher,
		reconcile: reconcile,
		batchSize: batchSize,
		logger:    logger,
	}
}

// partitionLessonIDs 去重、按教务 ID 降序排序并切分为固定大小的批
func partitionLessonIDs(ids []int64, size int) [][]int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] > unique[j] })

	var batches [][]int64
	for start := 0; start < len(unique); start += size {
		end := start + size
		if end > len(unique) {
			end = len(unique)
		}
		batches = append(batches, unique[start:end])
	}
	return batches
}

func (s *scheduleSyncService) SyncSemester(ctx context.Context, semester *model.Semester) (*SyncStats, error) {
	jwIDs, err := s.repo.Section.ListJwIDsBySemester(ctx, semester.SemesterID)
	if err != nil {
		return nil, err
	}
	if len(jwIDs) == 0 {
		return nil, ErrNoSections
	}

	batches := partitionLessonIDs(jwIDs, s.batchSize)
	stats := &SyncStats{Sections: len(jwIDs), Batches: len(batches)}
	s.logger.Info("开始同步学期排课",
		zap.String("semester", semester.Name),
		zap.Int("sections", len(jwIDs)),
		zap.Int("batches", len(batches)),
		zap.Int("batch_size", s.batchSize))

	done := 0
	for i, batch := range batches {
		s.logger.Info("处理排课批次",
			zap.Int("batch", i+1),
			zap.Int("total", len(batches)),
			zap.Int("size", len(batch)),
			zap.Int("done_sections", done))
		done += len(batch)

		datum, err := s.fetcher.FetchScheduleDatum(ctx, batch)
		if err != nil {
			stats.FailedBatch++
			s.logger.Error("排课批次拉取失败",
				zap.Int("batch", i+1),
				zap.Error(err))
			continue
		}

		batchStats, err := s.reconcile.ReconcileDatum(ctx, datum)
		if batchStats != nil {
			stats.Processed += batchStats.Processed
			stats.Missing += batchStats.Missing
			stats.SectionError += batchStats.Errors
		}
		if err != nil {
			stats.FailedBatch++
			s.logger.Error("排课批次协调失败",
				zap.Int("batch", i+1),
				zap.Error(err))
		}
	}

	s.logger.Info("学期排课同步完成",
		zap.String("semester", semester.Name),
		zap.Int("processed", stats.Processed),
		zap.Int("missing", stats.Missing),
		zap.Int("failed_batches", stats.FailedBatch))
	return stats, nil
}
