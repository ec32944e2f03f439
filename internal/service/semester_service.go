package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/dto"
	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
	"github.com/SiGNAL-Team/server/internal/upstream"
)

// ── 学期模块业务错误 ──

var (
	ErrSemesterNotFound  = errors.New("学期不存在")
	ErrNoSemesters       = errors.New("上游未返回任何学期")
	ErrSemesterCodeEmpty = errors.New("学期代码不能为空")
)

// SemesterCatalog 学期同步依赖的上游接口
type SemesterCatalog interface {
	FetchSemesters(ctx context.Context) ([]upstream.SemesterJSON, error)
}

// SemesterService 学期业务接口
type SemesterService interface {
	// Sync 从教务目录拉取学期列表并按 jw_id Upsert，返回同步后的全部学期
	Sync(ctx context.Context) ([]model.Semester, error)
	List(ctx context.Context) ([]dto.SemesterResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SemesterResponse, error)
	GetByJwID(ctx context.Context, jwID int64) (*dto.SemesterResponse, error)
	// SelectByCode 在已同步的学期中按代码选择
	SelectByCode(ctx context.Context, code string) (*model.Semester, error)
	// MostRecent 返回最近开始的学期
	MostRecent(ctx context.Context) (*model.Semester, error)
}

type semesterService struct {
	repo    *repository.Repository
	catalog SemesterCatalog
	logger  *zap.Logger
}

// NewSemesterService 创建 SemesterService 实例
func NewSemesterService(repo *repository.Repository, catalog SemesterCatalog, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, catalog: catalog, logger: logger}
}

// parseDate 解析 YYYY-MM-DD；空串或非法格式返回 nil
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func (s *semesterService) Sync(ctx context.Context) ([]model.Semester, error) {
	items, err := s.catalog.FetchSemesters(ctx)
	if err != nil {
		s.logger.Error("拉取学期列表失败", zap.Error(err))
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoSemesters
	}

	semesters := make([]model.Semester, 0, len(items))
	for _, item := range items {
		jwID := item.ID
		start := parseDate(item.Start)
		end := parseDate(item.End)
		if item.Start != "" && start == nil {
			s.logger.Warn("学期日期格式非法", zap.String("semester", item.NameZh), zap.String("start", item.Start))
		}

		semester := model.Semester{
			JwID:      &jwID,
			Name:      item.NameZh,
			Code:      item.Code,
			StartDate: start,
			EndDate:   end,
		}
		created, err := s.repo.Semester.UpsertByJwID(ctx, &semester)
		if err != nil {
			s.logger.Error("学期入库失败",
				zap.Int64("jw_id", jwID),
				zap.String("code", item.Code),
				zap.Error(err))
			return nil, err
		}
		if created {
			s.logger.Info("新建学期", zap.String("name", semester.Name), zap.String("code", semester.Code))
		} else {
			s.logger.Debug("更新学期", zap.String("name", semester.Name), zap.String("code", semester.Code))
		}
		semesters = append(semesters, semester)
	}
	s.logger.Info("学期同步完成", zap.Int("count", len(semesters)))
	return semesters, nil
}

func (s *semesterService) List(ctx context.Context) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		resp = append(resp, toSemesterResponse(&semesters[i]))
	}
	return resp, nil
}

func (s *semesterService) GetByID(ctx context.Context, id string) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	resp := toSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) GetByJwID(ctx context.Context, jwID int64) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByJwID(ctx, jwID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	resp := toSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) SelectByCode(ctx context.Context, code string) (*model.Semester, error) {
	if code == "" {
		return nil, ErrSemesterCodeEmpty
	}
	semesters, err := s.repo.Semester.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range semesters {
		if semesters[i].Code == code {
			return &semesters[i], nil
		}
	}
	return nil, ErrSemesterNotFound
}

func (s *semesterService) MostRecent(ctx context.Context) (*model.Semester, error) {
	semesters, err := s.repo.Semester.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(semesters) == 0 {
		return nil, ErrSemesterNotFound
	}
	return &semesters[0], nil
}

func toSemesterResponse(m *model.Semester) dto.SemesterResponse {
	resp := dto.SemesterResponse{
		SemesterID: m.SemesterID,
		JwID:       m.JwID,
		Name:       m.Name,
		Code:       m.Code,
	}
	if m.StartDate != nil {
		s := m.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if m.EndDate != nil {
		e := m.EndDate.Format("2006-01-02")
		resp.EndDate = &e
	}
	return resp
}
