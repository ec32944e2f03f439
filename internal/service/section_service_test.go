package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/dto"
	"github.com/SiGNAL-Team/server/internal/model"
)

// seedSectionIn 预置一条归属指定学期的开课，可带课程关联
func seedSectionIn(t *testing.T, m *mockRepos, jwID int64, code, semesterID, courseName string) *model.Section {
	t.Helper()
	section := &model.Section{JwID: &jwID, Code: code, CourseID: "course-1", SemesterID: &semesterID}
	if courseName != "" {
		section.Course = &model.Course{CourseID: "course-1", NameCN: courseName}
	}
	if err := m.repo.Section.UpsertByJwID(context.Background(), section); err != nil {
		t.Fatal(err)
	}
	return section
}

func TestSectionService_List_SemesterFilter(t *testing.T) {
	m := newMockRepos()
	svc := NewSectionService(m.repo, zap.NewNop())

	seedSectionIn(t, m, 1001, "MATH1001.01", "sem-1", "")
	seedSectionIn(t, m, 1002, "MATH1001.02", "sem-1", "")
	seedSectionIn(t, m, 2001, "PHYS1001.01", "sem-2", "")

	sections, total, err := svc.List(context.Background(), &dto.SectionListRequest{SemesterID: "sem-1", Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if total != 2 || len(sections) != 2 {
		t.Fatalf("total = %d, len = %d, 期望各为 2", total, len(sections))
	}
	// 按开课代码升序
	if sections[0].Code != "MATH1001.01" || sections[1].Code != "MATH1001.02" {
		t.Errorf("排序错误: %s, %s", sections[0].Code, sections[1].Code)
	}
}

func TestSectionService_List_KeywordAndPagination(t *testing.T) {
	m := newMockRepos()
	svc := NewSectionService(m.repo, zap.NewNop())

	seedSectionIn(t, m, 1001, "MATH1001.01", "sem-1", "单变量微积分")
	seedSectionIn(t, m, 1002, "MATH1002.01", "sem-1", "多变量微积分")
	seedSectionIn(t, m, 1003, "MATH1003.01", "sem-1", "线性代数")

	sections, total, err := svc.List(context.Background(), &dto.SectionListRequest{Keyword: "微积分", Page: 2, PageSize: 1})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, 期望 2", total)
	}
	if len(sections) != 1 || sections[0].Code != "MATH1002.01" {
		t.Errorf("第二页应只含 MATH1002.01, got %+v", sections)
	}
}

func TestSectionService_GetByJwID(t *testing.T) {
	m := newMockRepos()
	svc := NewSectionService(m.repo, zap.NewNop())

	seeded := seedSectionIn(t, m, 1001, "MATH1001.01", "sem-1", "单变量微积分")

	got, err := svc.GetByJwID(context.Background(), 1001)
	if err != nil {
		t.Fatalf("GetByJwID 失败: %v", err)
	}
	if got.SectionID != seeded.SectionID || got.Code != "MATH1001.01" {
		t.Errorf("响应不匹配: %+v", got)
	}
	if got.Course == nil || got.Course.NameCN != "单变量微积分" {
		t.Errorf("课程关联未填充: %+v", got.Course)
	}

	if _, err := svc.GetByJwID(context.Background(), 9999); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("err = %v, 期望 ErrSectionNotFound", err)
	}
}

func TestSectionService_ListSchedules(t *testing.T) {
	m := newMockRepos()
	svc := NewSectionService(m.repo, zap.NewNop())
	ctx := context.Background()

	section := seedSectionIn(t, m, 1001, "MATH1001.01", "sem-1", "")
	later := model.Schedule{
		SectionID: section.SectionID,
		Date:      time.Date(2024, 9, 4, 0, 0, 0, 0, time.UTC),
		Weekday:   3, StartTime: 470, EndTime: 565, WeekIndex: 1,
	}
	earlier := model.Schedule{
		SectionID: section.SectionID,
		Date:      time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
		Weekday:   1, StartTime: 470, EndTime: 565, WeekIndex: 1,
	}
	if err := m.schedule.BatchCreate(ctx, []model.Schedule{later, earlier}); err != nil {
		t.Fatal(err)
	}

	schedules, err := svc.ListSchedules(ctx, section.SectionID)
	if err != nil {
		t.Fatalf("ListSchedules 失败: %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("len = %d, 期望 2", len(schedules))
	}
	// 按日期升序
	if schedules[0].Date != "2024-09-02" || schedules[1].Date != "2024-09-04" {
		t.Errorf("排序错误: %s, %s", schedules[0].Date, schedules[1].Date)
	}

	if _, err := svc.ListSchedules(ctx, "missing"); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("err = %v, 期望 ErrSectionNotFound", err)
	}
}

func TestSectionService_ListGroups(t *testing.T) {
	m := newMockRepos()
	svc := NewSectionService(m.repo, zap.NewNop())
	ctx := context.Background()

	section := seedSectionIn(t, m, 1001, "MATH1001.01", "sem-1", "")
	for _, g := range []model.ScheduleGroup{
		{JwID: 502, SectionID: section.SectionID, GroupNo: 2, LimitCount: intptr(30)},
		{JwID: 501, SectionID: section.SectionID, GroupNo: 1, LimitCount: intptr(30), IsDefault: true},
	} {
		group := g
		if err := m.schedule.UpsertGroupByJwID(ctx, &group); err != nil {
			t.Fatal(err)
		}
	}

	groups, err := svc.ListGroups(ctx, section.SectionID)
	if err != nil {
		t.Fatalf("ListGroups 失败: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("len = %d, 期望 2", len(groups))
	}
	// 按组号升序
	if groups[0].GroupNo != 1 || !groups[0].IsDefault {
		t.Errorf("首组应为默认组 1, got %+v", groups[0])
	}
}

func TestSectionService_ListTeachers_Pagination(t *testing.T) {
	m := newMockRepos()
	svc := NewSectionService(m.repo, zap.NewNop())
	ctx := context.Background()

	for _, name := range []string{"张三", "李四", "王五"} {
		if err := m.teacher.Create(ctx, &model.Teacher{NameCN: name}); err != nil {
			t.Fatal(err)
		}
	}

	teachers, total, err := svc.ListTeachers(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListTeachers 失败: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, 期望 3", total)
	}
	if len(teachers) != 1 {
		t.Errorf("第二页 len = %d, 期望 1", len(teachers))
	}
}

func TestSectionService_ListDepartments(t *testing.T) {
	m := newMockRepos()
	svc := NewSectionService(m.repo, zap.NewNop())
	ctx := context.Background()

	for _, code := range []string{"011", "004"} {
		if _, err := m.department.GetOrCreateByCode(ctx, code); err != nil {
			t.Fatal(err)
		}
	}

	depts, err := svc.ListDepartments(ctx)
	if err != nil {
		t.Fatalf("ListDepartments 失败: %v", err)
	}
	if len(depts) != 2 {
		t.Fatalf("len = %d, 期望 2", len(depts))
	}
	// 按单位代码升序
	if depts[0].Code != "004" || depts[1].Code != "011" {
		t.Errorf("排序错误: %s, %s", depts[0].Code, depts[1].Code)
	}
}
