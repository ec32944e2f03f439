package handler

import "github.com/SiGNAL-Team/server/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Semester   *SemesterHandler
	Section    *SectionHandler
	Course     *CourseHandler
	Department *DepartmentHandler
	Teacher    *TeacherHandler
	Reference  *ReferenceHandler
	Location   *LocationHandler
	Export     *ExportHandler
	Admin      *AdminHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Semester:   NewSemesterHandler(svc.Semester),
		Section:    NewSectionHandler(svc.Section),
		Course:     NewCourseHandler(svc.Course),
		Department: NewDepartmentHandler(svc.Section),
		Teacher:    NewTeacherHandler(svc.Section),
		Reference:  NewReferenceHandler(svc.Reference),
		Location:   NewLocationHandler(svc.Location),
		Export:     NewExportHandler(svc.Export),
		Admin:      NewAdminHandler(svc.Semester, svc.Catalog),
	}
}
