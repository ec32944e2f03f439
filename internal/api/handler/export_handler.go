package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSectionCalendar 导出单个开课的 iCalendar 日历
// GET /api/v1/sections/:id/calendar.ics
func (h *ExportHandler) ExportSectionCalendar(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "开课ID不能为空")
		return
	}

	data, filename, err := h.exportSvc.ExportSectionCalendar(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

// ExportSemesterXlsx 导出学期开课清单 Excel
// GET /api/v1/semesters/:id/sections.xlsx
func (h *ExportHandler) ExportSemesterXlsx(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportSemesterXlsx(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSectionNotFound):
		response.NotFound(c, 13001, "开课记录不存在")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 12001, "学期不存在")
	case errors.Is(err, service.ErrExportNoSchedules):
		response.NotFound(c, 16101, "该开课暂无排课数据")
	case errors.Is(err, service.ErrExportNoSections):
		response.NotFound(c, 16102, "该学期暂无开课数据")
	default:
		response.InternalError(c)
	}
}
