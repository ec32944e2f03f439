package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/dto"
	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
)

// ── 课程模块业务错误 ──

var ErrCourseNotFound = errors.New("课程不存在")

// CourseService 课程查询业务接口
type CourseService interface {
	List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseDetailResponse, int64, error)
	GetByID(ctx context.Context, id string) (*dto.CourseDetailResponse, error)
	GetByJwID(ctx context.Context, jwID int64) (*dto.CourseDetailResponse, error)
	GetByCode(ctx context.Context, code string) (*dto.CourseDetailResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseDetailResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	courses, total, err := s.repo.Course.List(ctx, req.Keyword, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.CourseDetailResponse, 0, len(courses))
	for i := range courses {
		out = append(out, *toCourseDetailResponse(&courses[i]))
	}
	return out, total, nil
}

func (s *courseService) GetByID(ctx context.Context, id string) (*dto.CourseDetailResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return toCourseDetailResponse(course), nil
}

func (s *courseService) GetByJwID(ctx context.Context, jwID int64) (*dto.CourseDetailResponse, error) {
	course, err := s.repo.Course.GetByJwID(ctx, jwID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return toCourseDetailResponse(course), nil
}

func (s *courseService) GetByCode(ctx context.Context, code string) (*dto.CourseDetailResponse, error) {
	course, err := s.repo.Course.GetByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return toCourseDetailResponse(course), nil
}

func toCourseDetailResponse(course *model.Course) *dto.CourseDetailResponse {
	resp := &dto.CourseDetailResponse{
		CourseID: course.CourseID,
		JwID:     course.JwID,
		Code:     course.Code,
		NameCN:   course.NameCN,
		NameEN:   course.NameEN,
	}
	if course.Type != nil {
		resp.Type = &course.Type.NameCN
	}
	if course.Gradation != nil {
		resp.Gradation = &course.Gradation.NameCN
	}
	if course.Category != nil {
		resp.Category = &course.Category.NameCN
	}
	if course.Classify != nil {
		resp.Classify = &course.Classify.NameCN
	}
	if course.ClassType != nil {
		resp.ClassType = &course.ClassType.NameCN
	}
	if course.EducationLevel != nil {
		resp.EducationLevel = &course.EducationLevel.NameCN
	}
	return resp
}
