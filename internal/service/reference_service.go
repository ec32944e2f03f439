package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/dto"
	"github.com/SiGNAL-Team/server/internal/repository"
)

// ── 参照表模块业务错误 ──

var ErrUnknownLookupKind = errors.New("未知的参照表类型")

// ReferenceService 参照表与行政班查询业务接口
//
// 参照表按类型名暴露，类型集合固定为目录导入维护的八张表
type ReferenceService interface {
	// ListLookup 返回指定参照表的全部条目，按中文名升序
	ListLookup(ctx context.Context, kind string) ([]dto.LookupResponse, error)
	// LookupKinds 返回全部可用的参照表类型名
	LookupKinds() []string
	ListAdminClasses(ctx context.Context) ([]dto.AdminClassResponse, error)
}

type referenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	kinds  map[string]func(ctx context.Context) ([]dto.LookupResponse, error)
	order  []string
}

// NewReferenceService 创建 ReferenceService 实例
func NewReferenceService(repo *repository.Repository, logger *zap.Logger) ReferenceService {
	s := &referenceService{repo: repo, logger: logger}
	s.kinds = map[string]func(ctx context.Context) ([]dto.LookupResponse, error){
		"course-types": func(ctx context.Context) ([]dto.LookupResponse, error) {
			records, err := repo.Lookup.ListCourseTypes(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]dto.LookupResponse, 0, len(records))
			for i := range records {
				out = append(out, dto.LookupResponse{ID: records[i].CourseTypeID, NameCN: records[i].NameCN, NameEN: records[i].NameEN})
			}
			return out, nil
		},
		"course-gradations": func(ctx context.Context) ([]dto.LookupResponse, error) {
			records, err := repo.Lookup.ListCourseGradations(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]dto.LookupResponse, 0, len(records))
			for i := range records {
				out = append(out, dto.LookupResponse{ID: records[i].CourseGradationID, NameCN: records[i].NameCN, NameEN: records[i].NameEN})
			}
			return out, nil
		},
		"course-categories": func(ctx context.Context) ([]dto.LookupResponse, error) {
			records, err := repo.Lookup.ListCourseCategories(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]dto.LookupResponse, 0, len(records))
			for i := range records {
				out = append(out, dto.LookupResponse{ID: records[i].CourseCategoryID, NameCN: records[i].NameCN, NameEN: records[i].NameEN})
			}
			return out, nil
		},
		"course-classifies": func(ctx context.Context) ([]dto.LookupResponse, error) {
			records, err := repo.Lookup.ListCourseClassifies(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]dto.LookupResponse, 0, len(records))
			for i := range records {
				out = append(out, dto.LookupResponse{ID: records[i].CourseClassifyID, NameCN: records[i].NameCN, NameEN: records[i].NameEN})
			}
			return out, nil
		},
		"class-types": func(ctx context.Context) ([]dto.LookupResponse, error) {
			records, err := repo.Lookup.ListClassTypes(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]dto.LookupResponse, 0, len(records))
			for i := range records {
				out = append(out, dto.LookupResponse{ID: records[i].ClassTypeID, NameCN: records[i].NameCN, NameEN: records[i].NameEN})
			}
			return out, nil
		},
		"education-levels": func(ctx context.Context) ([]dto.LookupResponse, error) {
			records, err := repo.Lookup.ListEducationLevels(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]dto.LookupResponse, 0, len(records))
			for i := range records {
				out = append(out, dto.LookupResponse{ID: records[i].EducationLevelID, NameCN: records[i].NameCN, NameEN: records[i].NameEN})
			}
			return out, nil
		},
		"exam-modes": func(ctx context.Context) ([]dto.LookupResponse, error) {
			records, err := repo.Lookup.ListExamModes(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]dto.LookupResponse, 0, len(records))
			for i := range records {
				out = append(out, dto.LookupResponse{ID: records[i].ExamModeID, NameCN: records[i].NameCN, NameEN: records[i].NameEN})
			}
			return out, nil
		},
		"teach-languages": func(ctx context.Context) ([]dto.LookupResponse, error) {
			records, err := repo.Lookup.ListTeachLanguages(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]dto.LookupResponse, 0, len(records))
			for i := range records {
				out = append(out, dto.LookupResponse{ID: records[i].TeachLanguageID, NameCN: records[i].NameCN, NameEN: records[i].NameEN})
			}
			return out, nil
		},
	}
	s.order = []string{
		"course-types", "course-gradations", "course-categories", "course-classifies",
		"class-types", "education-levels", "exam-modes", "teach-languages",
	}
	return s
}

func (s *referenceService) ListLookup(ctx context.Context, kind string) ([]dto.LookupResponse, error) {
	list, ok := s.kinds[kind]
	if !ok {
		return nil, ErrUnknownLookupKind
	}
	return list(ctx)
}

func (s *referenceService) LookupKinds() []string {
	kinds := make([]string, len(s.order))
	copy(kinds, s.order)
	return kinds
}

func (s *referenceService) ListAdminClasses(ctx context.Context) ([]dto.AdminClassResponse, error) {
	classes, err := s.repo.AdminClass.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, dto.AdminClassResponse{
			AdminClassID: classes[i].AdminClassID,
			NameCN:       classes[i].NameCN,
			NameEN:       classes[i].NameEN,
		})
	}
	return out, nil
}
