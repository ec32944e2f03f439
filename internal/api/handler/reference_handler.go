package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// ReferenceHandler 参照表与行政班 HTTP 处理器
type ReferenceHandler struct {
	referenceSvc service.ReferenceService
}

// NewReferenceHandler 创建 ReferenceHandler
func NewReferenceHandler(referenceSvc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceSvc: referenceSvc}
}

// ListLookupKinds 获取全部参照表类型名
// GET /api/v1/lookups
func (h *ReferenceHandler) ListLookupKinds(c *gin.Context) {
	response.OK(c, gin.H{"kinds": h.referenceSvc.LookupKinds()})
}

// ListLookup 获取指定参照表的全部条目
// GET /api/v1/lookups/:kind
func (h *ReferenceHandler) ListLookup(c *gin.Context) {
	entries, err := h.referenceSvc.ListLookup(c.Request.Context(), c.Param("kind"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownLookupKind) {
			response.NotFound(c, 15001, "未知的参照表类型")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// ListAdminClasses 获取行政班列表
// GET /api/v1/admin-classes
func (h *ReferenceHandler) ListAdminClasses(c *gin.Context) {
	classes, err := h.referenceSvc.ListAdminClasses(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": classes})
}
