package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// RoomRepository 校区 / 教学楼 / 教室数据访问接口
//
// 校区在教务目录负载里只出现名称，在排课负载里带 jw_id，
// UpsertCampus 先按 jw_id 归并、再按中文名归并并回填 jw_id
type RoomRepository interface {
	UpsertCampus(ctx context.Context, campus *model.Campus) error
	UpsertBuildingByJwID(ctx context.Context, building *model.Building) error
	UpsertRoomTypeByJwID(ctx context.Context, roomType *model.RoomType) error
	UpsertRoomByJwID(ctx context.Context, room *model.Room) error
	GetRoomByID(ctx context.Context, id string) (*model.Room, error)
	ListRooms(ctx context.Context, buildingID string) ([]model.Room, error)
	ListBuildings(ctx context.Context) ([]model.Building, error)
	ListCampuses(ctx context.Context) ([]model.Campus, error)
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo 创建 RoomRepository 实例
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) UpsertCampus(ctx context.Context, campus *model.Campus) error {
	var existing model.Campus
	var err error
	if campus.JwID != nil {
		err = r.db.WithContext(ctx).
			Where("jw_id = ?", *campus.JwID).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = r.db.WithContext(ctx).
				Where("name_cn = ?", campus.NameCN).
				First(&existing).Error
		}
	} else {
		err = r.db.WithContext(ctx).
			Where("name_cn = ?", campus.NameCN).
			First(&existing).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(campus).Error
	}
	if err != nil {
		return err
	}
	campus.CampusID = existing.CampusID
	campus.CreatedAt = existing.CreatedAt
	if campus.JwID == nil {
		campus.JwID = existing.JwID
	}
	return r.db.WithContext(ctx).Save(campus).Error
}

func (r *roomRepo) UpsertBuildingByJwID(ctx context.Context, building *model.Building) error {
	var existing model.Building
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", building.JwID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(building).Error
	}
	if err != nil {
		return err
	}
	building.BuildingID = existing.BuildingID
	building.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(building).Error
}

func (r *roomRepo) UpsertRoomTypeByJwID(ctx context.Context, roomType *model.RoomType) error {
	var existing model.RoomType
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", roomType.JwID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(roomType).Error
	}
	if err != nil {
		return err
	}
	roomType.RoomTypeID = existing.RoomTypeID
	roomType.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(roomType).Error
}

func (r *roomRepo) UpsertRoomByJwID(ctx context.Context, room *model.Room) error {
	var existing model.Room
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", room.JwID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(room).Error
	}
	if err != nil {
		return err
	}
	room.RoomID = existing.RoomID
	room.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepo) GetRoomByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Preload("Building").
		Preload("Building.Campus").
		Preload("RoomType").
		Where("room_id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) ListRooms(ctx context.Context, buildingID string) ([]model.Room, error) {
	var rooms []model.Room
	query := r.db.WithContext(ctx).Preload("Building").Preload("RoomType")
	if buildingID != "" {
		query = query.Where("building_id = ?", buildingID)
	}
	err := query.Order("code ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) ListBuildings(ctx context.Context) ([]model.Building, error) {
	var buildings []model.Building
	err := r.db.WithContext(ctx).
		Preload("Campus").
		Order("code ASC").
		Find(&buildings).Error
	return buildings, err
}

func (r *roomRepo) ListCampuses(ctx context.Context) ([]model.Campus, error) {
	var campuses []model.Campus
	err := r.db.WithContext(ctx).
		Order("name_cn ASC").
		Find(&campuses).Error
	return campuses, err
}
