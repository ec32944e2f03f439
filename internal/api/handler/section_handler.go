package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/dto"
	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// SectionHandler 开课模块 HTTP 处理器
type SectionHandler struct {
	sectionSvc service.SectionService
}

// NewSectionHandler 创建 SectionHandler
func NewSectionHandler(sectionSvc service.SectionService) *SectionHandler {
	return &SectionHandler{sectionSvc: sectionSvc}
}

// ListSections 分页查询开课列表
// GET /api/v1/sections?semester_id=&department_id=&course_code=&keyword=&page=&page_size=
func (h *SectionHandler) ListSections(c *gin.Context) {
	var req dto.SectionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	sections, total, err := h.sectionSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, sections, total, req.Page, req.PageSize)
}

// GetSection 获取开课详情
// GET /api/v1/sections/:id
func (h *SectionHandler) GetSection(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "开课ID不能为空")
		return
	}

	section, err := h.sectionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSectionError(c, err)
		return
	}

	response.OK(c, section)
}

// GetSectionByJwID 按教务系统 ID 获取开课详情
// GET /api/v1/sections/jw/:jw_id
func (h *SectionHandler) GetSectionByJwID(c *gin.Context) {
	jwID, err := strconv.ParseInt(c.Param("jw_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, 10001, "jw_id 必须为整数")
		return
	}

	section, err := h.sectionSvc.GetByJwID(c.Request.Context(), jwID)
	if err != nil {
		h.handleSectionError(c, err)
		return
	}

	response.OK(c, section)
}

// ListSectionSchedules 获取开课的排课列表（按日期、开始时间升序）
// GET /api/v1/sections/:id/schedules
func (h *SectionHandler) ListSectionSchedules(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "开课ID不能为空")
		return
	}

	schedules, err := h.sectionSvc.ListSchedules(c.Request.Context(), id)
	if err != nil {
		h.handleSectionError(c, err)
		return
	}

	response.OK(c, gin.H{"list": schedules})
}

// ListSectionGroups 获取开课的排课分组列表
// GET /api/v1/sections/:id/groups
func (h *SectionHandler) ListSectionGroups(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "开课ID不能为空")
		return
	}

	groups, err := h.sectionSvc.ListGroups(c.Request.Context(), id)
	if err != nil {
		h.handleSectionError(c, err)
		return
	}

	response.OK(c, gin.H{"list": groups})
}

func (h *SectionHandler) handleSectionError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSectionNotFound) {
		response.NotFound(c, 13001, "开课记录不存在")
		return
	}
	response.InternalError(c)
}
