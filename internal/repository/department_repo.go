package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// DepartmentRepository 开课单位数据访问接口
type DepartmentRepository interface {
	// UpsertByCode 按单位代码新建或整体覆盖单位信息
	UpsertByCode(ctx context.Context, dept *model.Department) error
	// GetOrCreateByCode 按代码取单位；不存在时创建名为 未知(code) 的占位单位，
	// 供后续完整导入覆盖
	GetOrCreateByCode(ctx context.Context, code string) (*model.Department, error)
	GetByCode(ctx context.Context, code string) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
}

type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) UpsertByCode(ctx context.Context, dept *model.Department) error {
	var existing model.Department
	err := r.db.WithContext(ctx).
		Where("code = ?", dept.Code).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(dept).Error
	}
	if err != nil {
		return err
	}
	dept.DepartmentID = existing.DepartmentID
	dept.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *departmentRepo) GetOrCreateByCode(ctx context.Context, code string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&dept).Error
	if err == nil {
		return &dept, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	dept = model.Department{
		Code:   code,
		NameCN: fmt.Sprintf("未知(%s)", code),
	}
	if err := r.db.WithContext(ctx).Create(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) GetByCode(ctx context.Context, code string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&depts).Error
	return depts, err
}
