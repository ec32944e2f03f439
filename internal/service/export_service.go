package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSchedules = errors.New("该开课暂无排课数据")
	ErrExportNoSections  = errors.New("该学期暂无开课数据")
)

// 导出列顺序与表头，取值走字段路径注册表
var exportColumns = []struct {
	Path  string
	Title string
	Width float64
}{
	{"code", "课堂号", 16},
	{"course__code", "课程编号", 14},
	{"course__name_cn", "课程名称", 28},
	{"credits", "学分", 8},
	{"period", "学时", 8},
	{"teachers", "任课教师", 20},
	{"open_department__name_cn", "开课单位", 22},
	{"campus__name_cn", "校区", 10},
	{"teach_language__name_cn", "授课语言", 10},
	{"exam_mode__name_cn", "考核方式", 14},
	{"limit_count", "限选", 8},
	{"std_count", "已选", 8},
	{"date_time_place_text", "时间地点", 36},
}

// ExportService 导出业务接口
//
// ICS 以开课为粒度：一条上课记录一个 VEVENT，事件标记为
// TRANSPARENT，不占用空闲时间检索；Excel 以学期为粒度导出开课清单
type ExportService interface {
	// ExportSectionCalendar 导出开课的 iCalendar 日历
	ExportSectionCalendar(ctx context.Context, sectionID string) ([]byte, string, error)
	// ExportSemesterXlsx 导出学期开课清单为 Excel
	ExportSemesterXlsx(ctx context.Context, semesterID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo     *repository.Repository
	timezone *time.Location
	logger   *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, timezone *time.Location, logger *zap.Logger) ExportService {
	if timezone == nil {
		timezone = time.FixedZone("CST", 8*3600)
	}
	return &exportService{repo: repo, timezone: timezone, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportSectionCalendar — 开课日历导出
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportSectionCalendar(ctx context.Context, sectionID string) ([]byte, string, error) {
	section, err := s.repo.Section.GetByID(ctx, sectionID)
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrSectionNotFound
		}
		return nil, "", err
	}
	schedules, err := s.repo.Schedule.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, "", err
	}
	if len(schedules) == 0 {
		return nil, "", ErrExportNoSchedules
	}

	title := section.Code
	if section.Course != nil {
		title = fmt.Sprintf("%s %s", section.Course.Code, section.Course.NameCN)
	}

	cal := ics.NewCalendar()
	cal.SetProductId("-//USTC Course Schedule//ustc.edu.cn//")
	cal.SetXWRCalName(title)
	cal.SetXWRTimezone("Asia/Shanghai")

	now := time.Now().In(s.timezone)
	for i := range schedules {
		s.addScheduleEvent(cal, section, &schedules[i], now)
	}

	filename := fmt.Sprintf("%s.ics", section.Code)
	return []byte(cal.Serialize()), filename, nil
}

func (s *exportService) addScheduleEvent(cal *ics.Calendar, section *model.Section, schedule *model.Schedule, stamp time.Time) {
	event := cal.AddEvent(fmt.Sprintf("schedule-%s@ustc.edu.cn", schedule.ScheduleID))

	summary := section.Code
	if section.Course != nil {
		summary = fmt.Sprintf("%s %s", section.Course.Code, section.Course.NameCN)
	}
	event.SetSummary(summary)

	// 分钟数换算为当日时刻
	y, m, d := schedule.Date.Date()
	start := time.Date(y, m, d, 0, schedule.StartTime, 0, 0, s.timezone)
	end := time.Date(y, m, d, 0, schedule.EndTime, 0, 0, s.timezone)
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetDtStampTime(stamp)

	var locationParts []string
	if schedule.Room != nil {
		if schedule.Room.Building != nil {
			if schedule.Room.Building.Campus != nil {
				locationParts = append(locationParts, schedule.Room.Building.Campus.NameCN)
			}
			locationParts = append(locationParts, schedule.Room.Building.NameCN)
		}
		locationParts = append(locationParts, schedule.Room.NameCN)
	} else if schedule.CustomPlace != nil && *schedule.CustomPlace != "" {
		locationParts = append(locationParts, *schedule.CustomPlace)
	}
	if len(locationParts) > 0 {
		event.SetLocation(strings.Join(locationParts, " "))
	}

	var descParts []string
	if schedule.Teacher != nil {
		name := schedule.Teacher.NameCN
		if schedule.Teacher.Department != nil {
			name = fmt.Sprintf("%s (%s)", name, schedule.Teacher.Department.NameCN)
		}
		descParts = append(descParts, "教师: "+name)
	}
	if section.Course != nil && section.Course.EducationLevel != nil {
		descParts = append(descParts, "学历层次: "+section.Course.EducationLevel.NameCN)
	}
	if section.Credits > 0 {
		descParts = append(descParts, "学分: "+trimFloat(section.Credits))
	}
	if schedule.Experiment != nil && *schedule.Experiment != "" {
		descParts = append(descParts, "实验: "+*schedule.Experiment)
	}
	if schedule.LessonType != nil && *schedule.LessonType != "" {
		descParts = append(descParts, "课程类型: "+*schedule.LessonType)
	}
	descParts = append(descParts, "课程编号: "+section.Code)
	event.SetDescription(strings.Join(descParts, "\n"))

	var categories []string
	if section.Course != nil {
		if section.Course.Category != nil {
			categories = append(categories, section.Course.Category.NameCN)
		}
		if section.Course.Type != nil {
			categories = append(categories, section.Course.Type.NameCN)
		}
	}
	if len(categories) > 0 {
		event.SetProperty(ics.ComponentPropertyCategories, strings.Join(categories, ","))
	}

	event.SetTimeTransparency(ics.TransparencyTransparent)
}

// ═══════════════════════════════════════════════════════════
// ExportSemesterXlsx — 学期开课清单导出
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportSemesterXlsx(ctx context.Context, semesterID string) (*bytes.Buffer, string, error) {
	semester, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrSemesterNotFound
		}
		return nil, "", err
	}

	// 分页拉全量，避免一次性加载过大的结果集时 offset 失控
	const pageSize = 500
	var sections []model.Section
	for offset := 0; ; offset += pageSize {
		page, _, err := s.repo.Section.List(ctx, repository.SectionListFilter{
			SemesterID: semesterID,
			Offset:     offset,
			Limit:      pageSize,
		})
		if err != nil {
			return nil, "", err
		}
		sections = append(sections, page...)
		if len(page) < pageSize {
			break
		}
	}
	if len(sections) == 0 {
		return nil, "", ErrExportNoSections
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "开课清单"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col.Title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, name, name, col.Width)
	}

	for row := range sections {
		for i, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			f.SetCellValue(sheet, cell, SectionFieldValue(&sections[row], col.Path))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", err
	}
	filename := fmt.Sprintf("%s-开课清单.xlsx", semester.Code)
	return buf, filename, nil
}
