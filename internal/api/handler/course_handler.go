package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/dto"
	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 分页查询课程列表
// GET /api/v1/courses?keyword=&page=&page_size=
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var req dto.CourseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	courses, total, err := h.courseSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, courses, total, req.Page, req.PageSize)
}

// GetCourse 获取课程详情
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// GetCourseByJwID 按教务系统 ID 获取课程详情
// GET /api/v1/courses/jw/:jw_id
func (h *CourseHandler) GetCourseByJwID(c *gin.Context) {
	jwID, err := strconv.ParseInt(c.Param("jw_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, 10001, "jw_id 必须为整数")
		return
	}

	course, err := h.courseSvc.GetByJwID(c.Request.Context(), jwID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// GetCourseByCode 按课程代码获取课程详情
// GET /api/v1/courses/code/:code
func (h *CourseHandler) GetCourseByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, 10001, "课程代码不能为空")
		return
	}

	course, err := h.courseSvc.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCourseNotFound) {
		response.NotFound(c, 14001, "课程不存在")
		return
	}
	response.InternalError(c)
}
