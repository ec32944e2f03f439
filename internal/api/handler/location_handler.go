package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// LocationHandler 校区/楼栋/教室模块 HTTP 处理器
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler 创建 LocationHandler
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListCampuses 获取校区列表
// GET /api/v1/campuses
func (h *LocationHandler) ListCampuses(c *gin.Context) {
	campuses, err := h.locationSvc.ListCampuses(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": campuses})
}

// ListBuildings 获取楼栋列表
// GET /api/v1/buildings
func (h *LocationHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.locationSvc.ListBuildings(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": buildings})
}

// ListRooms 获取教室列表，可按楼栋过滤
// GET /api/v1/rooms?building_id=
func (h *LocationHandler) ListRooms(c *gin.Context) {
	rooms, err := h.locationSvc.ListRooms(c.Request.Context(), c.Query("building_id"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rooms})
}
