package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	// UpsertByJwID 按教务 ID 新建或整体覆盖课程
	UpsertByJwID(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	GetByJwID(ctx context.Context, jwID int64) (*model.Course, error)
	GetByCode(ctx context.Context, code string) (*model.Course, error)
	// List 按课程代码升序分页返回课程，keyword 对中文名模糊匹配
	List(ctx context.Context, keyword string, offset, limit int) ([]model.Course, int64, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) UpsertByJwID(ctx context.Context, course *model.Course) error {
	var existing model.Course
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", course.JwID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(course).Error
	}
	if err != nil {
		return err
	}
	course.CourseID = existing.CourseID
	course.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Gradation").
		Preload("Category").
		Preload("Classify").
		Preload("ClassType").
		Preload("EducationLevel").
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) GetByJwID(ctx context.Context, jwID int64) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Gradation").
		Preload("Category").
		Preload("Classify").
		Preload("ClassType").
		Preload("EducationLevel").
		Where("jw_id = ?", jwID).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) GetByCode(ctx context.Context, code string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context, keyword string, offset, limit int) ([]model.Course, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Course{})
	if keyword != "" {
		query = query.Where("name_cn LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	err := query.
		Preload("Type").
		Preload("Gradation").
		Preload("Category").
		Preload("Classify").
		Preload("ClassType").
		Preload("EducationLevel").
		Order("code ASC").
		Offset(offset).Limit(limit).
		Find(&courses).Error
	return courses, total, err
}
