package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// SemesterHandler 学期模块 HTTP 处理器
type SemesterHandler struct {
	semesterSvc service.SemesterService
}

// NewSemesterHandler 创建 SemesterHandler
func NewSemesterHandler(semesterSvc service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc}
}

// ListSemesters 获取学期列表（按开始日期倒序）
// GET /api/v1/semesters
func (h *SemesterHandler) ListSemesters(c *gin.Context) {
	semesters, err := h.semesterSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": semesters})
}

// GetSemester 获取学期详情
// GET /api/v1/semesters/:id
func (h *SemesterHandler) GetSemester(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	semester, err := h.semesterSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSemesterNotFound) {
			response.NotFound(c, 12001, "学期不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, semester)
}

// GetSemesterByJwID 按教务系统 ID 获取学期
// GET /api/v1/semesters/jw/:jw_id
func (h *SemesterHandler) GetSemesterByJwID(c *gin.Context) {
	jwID, err := strconv.ParseInt(c.Param("jw_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, 10001, "jw_id 必须为整数")
		return
	}

	semester, err := h.semesterSvc.GetByJwID(c.Request.Context(), jwID)
	if err != nil {
		if errors.Is(err, service.ErrSemesterNotFound) {
			response.NotFound(c, 12001, "学期不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, semester)
}
