package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// TeacherHandler 教师模块 HTTP 处理器
type TeacherHandler struct {
	sectionSvc service.SectionService
}

// NewTeacherHandler 创建 TeacherHandler
func NewTeacherHandler(sectionSvc service.SectionService) *TeacherHandler {
	return &TeacherHandler{sectionSvc: sectionSvc}
}

// ListTeachers 分页获取教师列表
// GET /api/v1/teachers?page=&page_size=
func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		response.BadRequest(c, 10001, "page 参数无效")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		response.BadRequest(c, 10001, "page_size 参数无效")
		return
	}

	teachers, total, err := h.sectionSvc.ListTeachers(c.Request.Context(), page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, teachers, total, page, pageSize)
}
