package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// ScheduleRepository 排课分组与单次上课记录数据访问接口
//
// 单次上课没有稳定的上游标识，协调时对开课整体替换：
// DeleteBySection 清空后 BatchCreate 重建，两步必须在同一事务内
type ScheduleRepository interface {
	UpsertGroupByJwID(ctx context.Context, group *model.ScheduleGroup) error
	GetGroupByJwID(ctx context.Context, jwID int64) (*model.ScheduleGroup, error)
	DeleteBySection(ctx context.Context, sectionID string) error
	BatchCreate(ctx context.Context, schedules []model.Schedule) error
	// ListBySection 按日期、开始时间升序返回开课的全部上课记录
	ListBySection(ctx context.Context, sectionID string) ([]model.Schedule, error)
	ListGroupsBySection(ctx context.Context, sectionID string) ([]model.ScheduleGroup, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo 创建 ScheduleRepository 实例
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) UpsertGroupByJwID(ctx context.Context, group *model.ScheduleGroup) error {
	var existing model.ScheduleGroup
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", group.JwID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(group).Error
	}
	if err != nil {
		return err
	}
	group.ScheduleGroupID = existing.ScheduleGroupID
	group.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *scheduleRepo) GetGroupByJwID(ctx context.Context, jwID int64) (*model.ScheduleGroup, error) {
	var group model.ScheduleGroup
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", jwID).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *scheduleRepo) DeleteBySection(ctx context.Context, sectionID string) error {
	return r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Delete(&model.Schedule{}).Error
}

func (r *scheduleRepo) BatchCreate(ctx context.Context, schedules []model.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&schedules).Error
}

func (r *scheduleRepo) ListBySection(ctx context.Context, sectionID string) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Room.Building").
		Preload("Teacher").
		Preload("ScheduleGroup").
		Where("section_id = ?", sectionID).
		Order("date ASC, start_time ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) ListGroupsBySection(ctx context.Context, sectionID string) ([]model.ScheduleGroup, error) {
	var groups []model.ScheduleGroup
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("group_no ASC").
		Find(&groups).Error
	return groups, err
}
