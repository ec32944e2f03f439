package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// AdminHandler 管理端数据同步 HTTP 处理器
type AdminHandler struct {
	semesterSvc service.SemesterService
	catalogSvc  service.CatalogService
}

// NewAdminHandler 创建 AdminHandler
func NewAdminHandler(semesterSvc service.SemesterService, catalogSvc service.CatalogService) *AdminHandler {
	return &AdminHandler{semesterSvc: semesterSvc, catalogSvc: catalogSvc}
}

// SyncSemesters 从教务目录同步学期列表
// POST /api/v1/admin/sync/semesters
func (h *AdminHandler) SyncSemesters(c *gin.Context) {
	semesters, err := h.semesterSvc.Sync(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoSemesters) {
			response.BadRequest(c, 12002, "上游未返回任何学期")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"total": len(semesters)})
}

// ImportCatalog 导入指定学期的开课目录；
// 不带 semester_code 时导入最近开始的学期
// POST /api/v1/admin/sync/catalog?semester_code=
func (h *AdminHandler) ImportCatalog(c *gin.Context) {
	var (
		semester *model.Semester
		err      error
	)
	if code := c.Query("semester_code"); code != "" {
		semester, err = h.semesterSvc.SelectByCode(c.Request.Context(), code)
	} else {
		semester, err = h.semesterSvc.MostRecent(c.Request.Context())
	}
	if err != nil {
		if errors.Is(err, service.ErrSemesterNotFound) {
			response.NotFound(c, 12001, "学期不存在")
			return
		}
		response.InternalError(c)
		return
	}

	stats, err := h.catalogSvc.ImportSemester(c.Request.Context(), semester)
	if err != nil {
		if errors.Is(err, service.ErrNoLessons) {
			response.BadRequest(c, 13002, "上游未返回任何开课")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}
