package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// AdminClassRepository 行政班数据访问接口
type AdminClassRepository interface {
	// GetOrCreateByName 按中文名取行政班，不存在则创建
	GetOrCreateByName(ctx context.Context, nameCN string, nameEN string) (*model.AdminClass, error)
	List(ctx context.Context) ([]model.AdminClass, error)
}

type adminClassRepo struct {
	db *gorm.DB
}

// NewAdminClassRepo 创建 AdminClassRepository 实例
func NewAdminClassRepo(db *gorm.DB) AdminClassRepository {
	return &adminClassRepo{db: db}
}

func (r *adminClassRepo) GetOrCreateByName(ctx context.Context, nameCN string, nameEN string) (*model.AdminClass, error) {
	var cls model.AdminClass
	err := r.db.WithContext(ctx).
		Where("name_cn = ?", nameCN).
		First(&cls).Error
	if err == nil {
		return &cls, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cls = model.AdminClass{NameCN: nameCN, NameEN: nameEN}
	if err := r.db.WithContext(ctx).Create(&cls).Error; err != nil {
		return nil, err
	}
	return &cls, nil
}

func (r *adminClassRepo) List(ctx context.Context) ([]model.AdminClass, error) {
	var classes []model.AdminClass
	err := r.db.WithContext(ctx).
		Order("name_cn ASC").
		Find(&classes).Error
	return classes, err
}
