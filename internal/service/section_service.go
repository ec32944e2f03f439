package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/dto"
	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
)

// ── 开课查询模块业务错误 ──

var ErrSectionNotFound = errors.New("开课记录不存在")

// SectionService 开课查询业务接口
type SectionService interface {
	List(ctx context.Context, req *dto.SectionListRequest) ([]dto.SectionResponse, int64, error)
	GetByID(ctx context.Context, id string) (*dto.SectionResponse, error)
	GetByJwID(ctx context.Context, jwID int64) (*dto.SectionResponse, error)
	// ListSchedules 返回开课的全部上课记录，按日期、开始时间升序
	ListSchedules(ctx context.Context, sectionID string) ([]dto.ScheduleResponse, error)
	ListGroups(ctx context.Context, sectionID string) ([]dto.ScheduleGroupResponse, error)
	ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	ListTeachers(ctx context.Context, page, pageSize int) ([]dto.TeacherResponse, int64, error)
}

type sectionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSectionService 创建 SectionService 实例
func NewSectionService(repo *repository.Repository, logger *zap.Logger) SectionService {
	return &sectionService{repo: repo, logger: logger}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (s *sectionService) List(ctx context.Context, req *dto.SectionListRequest) ([]dto.SectionResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	filter := repository.SectionListFilter{
		SemesterID:   req.SemesterID,
		DepartmentID: req.DepartmentID,
		CampusID:     req.CampusID,
		CourseCode:   req.CourseCode,
		Keyword:      req.Keyword,
		Offset:       (page - 1) * pageSize,
		Limit:        pageSize,
	}
	sections, total, err := s.repo.Section.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.SectionResponse, 0, len(sections))
	for i := range sections {
		resp = append(resp, toSectionResponse(&sections[i]))
	}
	return resp, total, nil
}

func (s *sectionService) GetByID(ctx context.Context, id string) (*dto.SectionResponse, error) {
	section, err := s.repo.Section.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	resp := toSectionResponse(section)
	return &resp, nil
}

func (s *sectionService) GetByJwID(ctx context.Context, jwID int64) (*dto.SectionResponse, error) {
	section, err := s.repo.Section.GetByJwID(ctx, jwID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	resp := toSectionResponse(section)
	return &resp, nil
}

func (s *sectionService) ListSchedules(ctx context.Context, sectionID string) ([]dto.ScheduleResponse, error) {
	if _, err := s.repo.Section.GetByID(ctx, sectionID); err != nil {
		if isNotFound(err) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	schedules, err := s.repo.Schedule.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		resp = append(resp, toScheduleResponse(&schedules[i]))
	}
	return resp, nil
}

func (s *sectionService) ListGroups(ctx context.Context, sectionID string) ([]dto.ScheduleGroupResponse, error) {
	groups, err := s.repo.Schedule.ListGroupsBySection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ScheduleGroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, dto.ScheduleGroupResponse{
			ScheduleGroupID: g.ScheduleGroupID,
			JwID:            g.JwID,
			GroupNo:         g.GroupNo,
			LimitCount:      g.LimitCount,
			StdCount:        g.StdCount,
			IsDefault:       g.IsDefault,
		})
	}
	return resp, nil
}

func (s *sectionService) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		resp = append(resp, dto.DepartmentResponse{
			DepartmentID: d.DepartmentID,
			Code:         d.Code,
			NameCN:       d.NameCN,
			NameEN:       d.NameEN,
			IsCollege:    d.IsCollege,
		})
	}
	return resp, nil
}

func (s *sectionService) ListTeachers(ctx context.Context, page, pageSize int) ([]dto.TeacherResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	teachers, total, err := s.repo.Teacher.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		resp = append(resp, toTeacherResponse(&teachers[i]))
	}
	return resp, total, nil
}

// ── 响应转换 ──

func toTeacherResponse(t *model.Teacher) dto.TeacherResponse {
	resp := dto.TeacherResponse{
		TeacherID: t.TeacherID,
		PersonID:  t.PersonID,
		NameCN:    t.NameCN,
		NameEN:    t.NameEN,
	}
	if t.Department != nil {
		resp.Department = &t.Department.NameCN
	}
	return resp
}

func toSectionResponse(m *model.Section) dto.SectionResponse {
	resp := dto.SectionResponse{
		SectionID:               m.SectionID,
		JwID:                    m.JwID,
		Code:                    m.Code,
		Credits:                 m.Credits,
		Period:                  m.Period,
		PeriodsPerWeek:          m.PeriodsPerWeek,
		StdCount:                m.StdCount,
		LimitCount:              m.LimitCount,
		GraduateAndPostgraduate: m.GraduateAndPostgraduate,
		DateTimePlaceText:       m.DateTimePlaceText,
		Teachers:                make([]dto.TeacherResponse, 0, len(m.Teachers)),
	}
	if len(m.DateTimePlacePersonText) > 0 {
		resp.DateTimePlacePersonText = json.RawMessage(m.DateTimePlacePersonText)
	}
	if m.Course != nil {
		course := dto.CourseResponse{
			CourseID: m.Course.CourseID,
			JwID:     m.Course.JwID,
			Code:     m.Course.Code,
			NameCN:   m.Course.NameCN,
			NameEN:   m.Course.NameEN,
		}
		if m.Course.Type != nil {
			course.Type = &m.Course.Type.NameCN
		}
		if m.Course.Category != nil {
			course.Category = &m.Course.Category.NameCN
		}
		resp.Course = &course
	}
	if m.Semester != nil {
		sem := toSemesterResponse(m.Semester)
		resp.Semester = &sem
	}
	if m.OpenDepartment != nil {
		resp.OpenDepartment = &dto.DepartmentResponse{
			DepartmentID: m.OpenDepartment.DepartmentID,
			Code:         m.OpenDepartment.Code,
			NameCN:       m.OpenDepartment.NameCN,
			NameEN:       m.OpenDepartment.NameEN,
			IsCollege:    m.OpenDepartment.IsCollege,
		}
	}
	if m.Campus != nil {
		resp.Campus = &m.Campus.NameCN
	}
	if m.ExamMode != nil {
		resp.ExamMode = &m.ExamMode.NameCN
	}
	if m.TeachLanguage != nil {
		resp.TeachLanguage = &m.TeachLanguage.NameCN
	}
	for i := range m.Teachers {
		resp.Teachers = append(resp.Teachers, toTeacherResponse(&m.Teachers[i]))
	}
	for _, c := range m.AdminClasses {
		resp.AdminClasses = append(resp.AdminClasses, c.NameCN)
	}
	return resp
}

func toScheduleResponse(m *model.Schedule) dto.ScheduleResponse {
	resp := dto.ScheduleResponse{
		ScheduleID:    m.ScheduleID,
		Date:          m.Date.Format("2006-01-02"),
		Weekday:       m.Weekday,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		WeekIndex:     m.WeekIndex,
		Periods:       m.Periods,
		LessonType:    m.LessonType,
		Experiment:    m.Experiment,
		CustomPlace:   m.CustomPlace,
		ExerciseClass: m.ExerciseClass,
	}
	if m.Room != nil {
		resp.Room = &m.Room.NameCN
		if m.Room.Building != nil {
			resp.Building = &m.Room.Building.NameCN
		}
	}
	if m.Teacher != nil {
		resp.Teacher = &m.Teacher.NameCN
	}
	if m.ScheduleGroup != nil {
		groupNo := m.ScheduleGroup.GroupNo
		resp.GroupNo = &groupNo
	}
	return resp
}
