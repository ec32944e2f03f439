package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// SemesterRepository 学期数据访问接口
type SemesterRepository interface {
	// UpsertByJwID 按教务 ID 新建或整体覆盖学期，返回是否为新建
	UpsertByJwID(ctx context.Context, semester *model.Semester) (created bool, err error)
	GetByID(ctx context.Context, id string) (*model.Semester, error)
	GetByJwID(ctx context.Context, jwID int64) (*model.Semester, error)
	List(ctx context.Context) ([]model.Semester, error)
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo 创建 SemesterRepository 实例
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) UpsertByJwID(ctx context.Context, semester *model.Semester) (bool, error) {
	var existing model.Semester
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", semester.JwID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.db.WithContext(ctx).Create(semester).Error
	}
	if err != nil {
		return false, err
	}
	semester.SemesterID = existing.SemesterID
	semester.CreatedAt = existing.CreatedAt
	return false, r.db.WithContext(ctx).Save(semester).Error
}

func (r *semesterRepo) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("semester_id = ?", id).
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) GetByJwID(ctx context.Context, jwID int64) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", jwID).
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) List(ctx context.Context) ([]model.Semester, error) {
	var semesters []model.Semester
	// 无开始日期的学期排在末尾，避免被当作最近学期选中
	err := r.db.WithContext(ctx).
		Order("start_date DESC NULLS LAST").
		Find(&semesters).Error
	return semesters, err
}
