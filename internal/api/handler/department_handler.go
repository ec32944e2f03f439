package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// DepartmentHandler 开课单位模块 HTTP 处理器
type DepartmentHandler struct {
	sectionSvc service.SectionService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(sectionSvc service.SectionService) *DepartmentHandler {
	return &DepartmentHandler{sectionSvc: sectionSvc}
}

// ListDepartments 获取开课单位列表
// GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.sectionSvc.ListDepartments(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": departments})
}
