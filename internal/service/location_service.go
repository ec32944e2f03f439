package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/dto"
	"github.com/SiGNAL-Team/server/internal/repository"
)

// LocationService 校区 / 教学楼 / 教室查询业务接口
type LocationService interface {
	ListCampuses(ctx context.Context) ([]dto.CampusResponse, error)
	ListBuildings(ctx context.Context) ([]dto.BuildingResponse, error)
	ListRooms(ctx context.Context, buildingID string) ([]dto.RoomResponse, error)
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

func (s *locationService) ListCampuses(ctx context.Context) ([]dto.CampusResponse, error) {
	campuses, err := s.repo.Room.ListCampuses(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CampusResponse, 0, len(campuses))
	for _, c := range campuses {
		resp = append(resp, dto.CampusResponse{
			CampusID: c.CampusID,
			JwID:     c.JwID,
			NameCN:   c.NameCN,
			NameEN:   c.NameEN,
		})
	}
	return resp, nil
}

func (s *locationService) ListBuildings(ctx context.Context) ([]dto.BuildingResponse, error) {
	buildings, err := s.repo.Room.ListBuildings(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BuildingResponse, 0, len(buildings))
	for _, b := range buildings {
		item := dto.BuildingResponse{
			BuildingID: b.BuildingID,
			JwID:       b.JwID,
			Code:       b.Code,
			NameCN:     b.NameCN,
			NameEN:     b.NameEN,
		}
		if b.Campus != nil {
			item.Campus = &b.Campus.NameCN
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *locationService) ListRooms(ctx context.Context, buildingID string) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.Room.ListRooms(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		item := dto.RoomResponse{
			RoomID:  r.RoomID,
			JwID:    r.JwID,
			Code:    r.Code,
			NameCN:  r.NameCN,
			NameEN:  r.NameEN,
			Floor:   r.Floor,
			Virtual: r.Virtual,
			Seats:   r.Seats,
		}
		if r.Building != nil {
			item.Building = &r.Building.NameCN
		}
		if r.RoomType != nil {
			item.RoomType = &r.RoomType.NameCN
		}
		resp = append(resp, item)
	}
	return resp, nil
}
