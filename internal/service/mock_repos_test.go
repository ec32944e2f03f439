package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
)

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[int64]*model.Semester
	nextID    int
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[int64]*model.Semester)}
}

func (m *mockSemesterRepo) UpsertByJwID(_ context.Context, semester *model.Semester) (bool, error) {
	if existing, ok := m.semesters[*semester.JwID]; ok {
		semester.SemesterID = existing.SemesterID
		m.semesters[*semester.JwID] = semester
		return false, nil
	}
	m.nextID++
	semester.SemesterID = fmt.Sprintf("sem-%d", m.nextID)
	m.semesters[*semester.JwID] = semester
	return true, nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id string) (*model.Semester, error) {
	for _, s := range m.semesters {
		if s.SemesterID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) GetByJwID(_ context.Context, jwID int64) (*model.Semester, error) {
	if s, ok := m.semesters[jwID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(_ context.Context) ([]model.Semester, error) {
	result := make([]model.Semester, 0, len(m.semesters))
	for _, s := range m.semesters {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		si, sj := result[i].StartDate, result[j].StartDate
		if si == nil || sj == nil {
			return si != nil
		}
		return si.After(*sj)
	})
	return result, nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	departments map[string]*model.Department
	nextID      int
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[string]*model.Department)}
}

func (m *mockDepartmentRepo) UpsertByCode(_ context.Context, dept *model.Department) error {
	if existing, ok := m.departments[dept.Code]; ok {
		dept.DepartmentID = existing.DepartmentID
	} else {
		m.nextID++
		dept.DepartmentID = fmt.Sprintf("dept-%d", m.nextID)
	}
	m.departments[dept.Code] = dept
	return nil
}

func (m *mockDepartmentRepo) GetOrCreateByCode(_ context.Context, code string) (*model.Department, error) {
	if d, ok := m.departments[code]; ok {
		return d, nil
	}
	m.nextID++
	dept := &model.Department{
		DepartmentID: fmt.Sprintf("dept-%d", m.nextID),
		Code:         code,
		NameCN:       fmt.Sprintf("未知(%s)", code),
	}
	m.departments[code] = dept
	return dept, nil
}

func (m *mockDepartmentRepo) GetByCode(_ context.Context, code string) (*model.Department, error) {
	if d, ok := m.departments[code]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	result := make([]model.Department, 0, len(m.departments))
	for _, d := range m.departments {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

// ── Mock LookupRepository ──

type mockLookupRepo struct {
	names  map[string]map[string]*model.LookupNames // 表名 → name_cn → 记录
	nextID int
}

func newMockLookupRepo() *mockLookupRepo {
	return &mockLookupRepo{names: make(map[string]map[string]*model.LookupNames)}
}

func (m *mockLookupRepo) upsert(table, nameCN string, nameEN *string) (string, bool) {
	if nameCN == "" {
		return "", false
	}
	if m.names[table] == nil {
		m.names[table] = make(map[string]*model.LookupNames)
	}
	if existing, ok := m.names[table][nameCN]; ok {
		// 与真实仓储一致：英文名无条件覆盖
		existing.NameEN = nameEN
		return table + "-" + nameCN, true
	}
	m.names[table][nameCN] = &model.LookupNames{NameCN: nameCN, NameEN: nameEN}
	m.nextID++
	return table + "-" + nameCN, true
}

func (m *mockLookupRepo) UpsertCourseType(_ context.Context, nameCN string, nameEN *string) (*model.CourseType, error) {
	id, ok := m.upsert("course_types", nameCN, nameEN)
	if !ok {
		return nil, nil
	}
	return &model.CourseType{CourseTypeID: id, LookupNames: *m.names["course_types"][nameCN]}, nil
}

func (m *mockLookupRepo) UpsertCourseGradation(_ context.Context, nameCN string, nameEN *string) (*model.CourseGradation, error) {
	id, ok := m.upsert("course_gradations", nameCN, nameEN)
	if !ok {
		return nil, nil
	}
	return &model.CourseGradation{CourseGradationID: id}, nil
}

func (m *mockLookupRepo) UpsertCourseCategory(_ context.Context, nameCN string, nameEN *string) (*model.CourseCategory, error) {
	id, ok := m.upsert("course_categories", nameCN, nameEN)
	if !ok {
		return nil, nil
	}
	return &model.CourseCategory{CourseCategoryID: id}, nil
}

func (m *mockLookupRepo) UpsertCourseClassify(_ context.Context, nameCN string, nameEN *string) (*model.CourseClassify, error) {
	id, ok := m.upsert("course_classifies", nameCN, nameEN)
	if !ok {
		return nil, nil
	}
	return &model.CourseClassify{CourseClassifyID: id}, nil
}

func (m *mockLookupRepo) UpsertExamMode(_ context.Context, nameCN string, nameEN *string) (*model.ExamMode, error) {
	id, ok := m.upsert("exam_modes", nameCN, nameEN)
	if !ok {
		return nil, nil
	}
	return &model.ExamMode{ExamModeID: id}, nil
}

func (m *mockLookupRepo) UpsertTeachLanguage(_ context.Context, nameCN string, nameEN *string) (*model.TeachLanguage, error) {
	id, ok := m.upsert("teach_languages", nameCN, nameEN)
	if !ok {
		return nil, nil
	}
	return &model.TeachLanguage{TeachLanguageID: id}, nil
}

func (m *mockLookupRepo) UpsertEducationLevel(_ context.Context, nameCN string, nameEN *string) (*model.EducationLevel, error) {
	id, ok := m.upsert("education_levels", nameCN, nameEN)
	if !ok {
		return nil, nil
	}
	return &model.EducationLevel{EducationLevelID: id}, nil
}

func (m *mockLookupRepo) UpsertClassType(_ context.Context, nameCN string, nameEN *string) (*model.ClassType, error) {
	id, ok := m.upsert("class_types", nameCN, nameEN)
	if !ok {
		return nil, nil
	}
	return &model.ClassType{ClassTypeID: id}, nil
}

// count 返回某个参照表的记录数
func (m *mockLookupRepo) count(table string) int {
	return len(m.names[table])
}

// listNames 按中文名升序返回某个参照表的全部记录
func (m *mockLookupRepo) listNames(table string) []model.LookupNames {
	out := make([]model.LookupNames, 0, len(m.names[table]))
	for _, n := range m.names[table] {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameCN < out[j].NameCN })
	return out
}

func (m *mockLookupRepo) ListCourseTypes(_ context.Context) ([]model.CourseType, error) {
	var out []model.CourseType
	for _, n := range m.listNames("course_types") {
		out = append(out, model.CourseType{CourseTypeID: "course_types-" + n.NameCN, LookupNames: n})
	}
	return out, nil
}

func (m *mockLookupRepo) ListCourseGradations(_ context.Context) ([]model.CourseGradation, error) {
	var out []model.CourseGradation
	for _, n := range m.listNames("course_gradations") {
		out = append(out, model.CourseGradation{CourseGradationID: "course_gradations-" + n.NameCN, LookupNames: n})
	}
	return out, nil
}

func (m *mockLookupRepo) ListCourseCategories(_ context.Context) ([]model.CourseCategory, error) {
	var out []model.CourseCategory
	for _, n := range m.listNames("course_categories") {
		out = append(out, model.CourseCategory{CourseCategoryID: "course_categories-" + n.NameCN, LookupNames: n})
	}
	return out, nil
}

func (m *mockLookupRepo) ListCourseClassifies(_ context.Context) ([]model.CourseClassify, error) {
	var out []model.CourseClassify
	for _, n := range m.listNames("course_classifies") {
		out = append(out, model.CourseClassify{CourseClassifyID: "course_classifies-" + n.NameCN, LookupNames: n})
	}
	return out, nil
}

func (m *mockLookupRepo) ListExamModes(_ context.Context) ([]model.ExamMode, error) {
	var out []model.ExamMode
	for _, n := range m.listNames("exam_modes") {
		out = append(out, model.ExamMode{ExamModeID: "exam_modes-" + n.NameCN, LookupNames: n})
	}
	return out, nil
}

func (m *mockLookupRepo) ListTeachLanguages(_ context.Context) ([]model.TeachLanguage, error) {
	var out []model.TeachLanguage
	for _, n := range m.listNames("teach_languages") {
		out = append(out, model.TeachLanguage{TeachLanguageID: "teach_languages-" + n.NameCN, LookupNames: n})
	}
	return out, nil
}

func (m *mockLookupRepo) ListEducationLevels(_ context.Context) ([]model.EducationLevel, error) {
	var out []model.EducationLevel
	for _, n := range m.listNames("education_levels") {
		out = append(out, model.EducationLevel{EducationLevelID: "education_levels-" + n.NameCN, LookupNames: n})
	}
	return out, nil
}

func (m *mockLookupRepo) ListClassTypes(_ context.Context) ([]model.ClassType, error) {
	var out []model.ClassType
	for _, n := range m.listNames("class_types") {
		out = append(out, model.ClassType{ClassTypeID: "class_types-" + n.NameCN, LookupNames: n})
	}
	return out, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[int64]*model.Course
	nextID  int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int64]*model.Course)}
}

func (m *mockCourseRepo) UpsertByJwID(_ context.Context, course *model.Course) error {
	if existing, ok := m.courses[*course.JwID]; ok {
		course.CourseID = existing.CourseID
	} else {
		m.nextID++
		course.CourseID = fmt.Sprintf("course-%d", m.nextID)
	}
	m.courses[*course.JwID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.CourseID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByJwID(_ context.Context, jwID int64) (*model.Course, error) {
	if c, ok := m.courses[jwID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByCode(_ context.Context, code string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context, keyword string, offset, limit int) ([]model.Course, int64, error) {
	var result []model.Course
	for _, c := range m.courses {
		if keyword != "" && !strings.Contains(c.NameCN, keyword) {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })

	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

// ── Mock SectionRepository ──

type mockSectionRepo struct {
	sections     map[int64]*model.Section
	teachers     map[string][]model.Teacher
	adminClasses map[string][]model.AdminClass
	nextID       int
	failJwIDs    map[int64]bool // 指定 jw_id 的写入强制失败
}

func newMockSectionRepo() *mockSectionRepo {
	return &mockSectionRepo{
		sections:     make(map[int64]*model.Section),
		teachers:     make(map[string][]model.Teacher),
		adminClasses: make(map[string][]model.AdminClass),
		failJwIDs:    make(map[int64]bool),
	}
}

func (m *mockSectionRepo) UpsertByJwID(_ context.Context, section *model.Section) error {
	if m.failJwIDs[*section.JwID] {
		return fmt.Errorf("模拟写入失败 jw_id=%d", *section.JwID)
	}
	if existing, ok := m.sections[*section.JwID]; ok {
		section.SectionID = existing.SectionID
	} else {
		m.nextID++
		section.SectionID = fmt.Sprintf("section-%d", m.nextID)
	}
	m.sections[*section.JwID] = section
	return nil
}

func (m *mockSectionRepo) GetByID(_ context.Context, id string) (*model.Section, error) {
	for _, s := range m.sections {
		if s.SectionID == id {
			cp := *s
			cp.Teachers = m.teachers[id]
			cp.AdminClasses = m.adminClasses[id]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectionRepo) GetByJwID(_ context.Context, jwID int64) (*model.Section, error) {
	if s, ok := m.sections[jwID]; ok {
		cp := *s
		cp.Teachers = m.teachers[s.SectionID]
		cp.AdminClasses = m.adminClasses[s.SectionID]
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectionRepo) ReplaceTeachers(_ context.Context, section *model.Section, teachers []model.Teacher) error {
	m.teachers[section.SectionID] = teachers
	return nil
}

func (m *mockSectionRepo) ReplaceAdminClasses(_ context.Context, section *model.Section, classes []model.AdminClass) error {
	m.adminClasses[section.SectionID] = classes
	return nil
}

func (m *mockSectionRepo) ListJwIDsBySemester(_ context.Context, semesterID string) ([]int64, error) {
	var ids []int64
	for jwID, s := range m.sections {
		if s.SemesterID != nil && *s.SemesterID == semesterID {
			ids = append(ids, jwID)
		}
	}
	return ids, nil
}

func (m *mockSectionRepo) List(_ context.Context, filter repository.SectionListFilter) ([]model.Section, int64, error) {
	var all []model.Section
	for _, s := range m.sections {
		if filter.SemesterID != "" && (s.SemesterID == nil || *s.SemesterID != filter.SemesterID) {
			continue
		}
		if filter.Keyword != "" && (s.Course == nil || !strings.Contains(s.Course.NameCN, filter.Keyword)) {
			continue
		}
		cp := *s
		cp.Teachers = m.teachers[s.SectionID]
		all = append(all, cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	total := int64(len(all))
	if filter.Offset >= len(all) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if filter.Limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[filter.Offset:end], total, nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers []*model.Teacher
	nextID   int
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{}
}

func (m *mockTeacherRepo) FindByPersonID(_ context.Context, personID int64) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.PersonID != nil && *t.PersonID == personID {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) FindByNameNoPersonID(_ context.Context, nameCN string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.NameCN == nameCN && t.PersonID == nil {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) FindByName(_ context.Context, nameCN string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.NameCN == nameCN {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.TeacherID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	m.nextID++
	teacher.TeacherID = fmt.Sprintf("teacher-%d", m.nextID)
	m.teachers = append(m.teachers, teacher)
	return nil
}

func (m *mockTeacherRepo) Save(_ context.Context, teacher *model.Teacher) error {
	for i, t := range m.teachers {
		if t.TeacherID == teacher.TeacherID {
			m.teachers[i] = teacher
			return nil
		}
	}
	m.teachers = append(m.teachers, teacher)
	return nil
}

func (m *mockTeacherRepo) List(_ context.Context, offset, limit int) ([]model.Teacher, int64, error) {
	result := make([]model.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		result = append(result, *t)
	}
	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

// ── Mock AdminClassRepository ──

type mockAdminClassRepo struct {
	classes map[string]*model.AdminClass
	nextID  int
}

func newMockAdminClassRepo() *mockAdminClassRepo {
	return &mockAdminClassRepo{classes: make(map[string]*model.AdminClass)}
}

func (m *mockAdminClassRepo) GetOrCreateByName(_ context.Context, nameCN string, nameEN string) (*model.AdminClass, error) {
	if c, ok := m.classes[nameCN]; ok {
		return c, nil
	}
	m.nextID++
	cls := &model.AdminClass{
		AdminClassID: fmt.Sprintf("class-%d", m.nextID),
		NameCN:       nameCN,
		NameEN:       nameEN,
	}
	m.classes[nameCN] = cls
	return cls, nil
}

func (m *mockAdminClassRepo) List(_ context.Context) ([]model.AdminClass, error) {
	out := make([]model.AdminClass, 0, len(m.classes))
	for _, c := range m.classes {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameCN < out[j].NameCN })
	return out, nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	campuses  map[string]*model.Campus // name_cn 为键
	buildings map[int64]*model.Building
	roomTypes map[int64]*model.RoomType
	rooms     map[int64]*model.Room
	nextID    int
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{
		campuses:  make(map[string]*model.Campus),
		buildings: make(map[int64]*model.Building),
		roomTypes: make(map[int64]*model.RoomType),
		rooms:     make(map[int64]*model.Room),
	}
}

func (m *mockRoomRepo) UpsertCampus(_ context.Context, campus *model.Campus) error {
	if existing, ok := m.campuses[campus.NameCN]; ok {
		campus.CampusID = existing.CampusID
		if campus.JwID == nil {
			campus.JwID = existing.JwID
		}
	} else {
		m.nextID++
		campus.CampusID = fmt.Sprintf("campus-%d", m.nextID)
	}
	m.campuses[campus.NameCN] = campus
	return nil
}

func (m *mockRoomRepo) UpsertBuildingByJwID(_ context.Context, building *model.Building) error {
	if existing, ok := m.buildings[*building.JwID]; ok {
		building.BuildingID = existing.BuildingID
	} else {
		m.nextID++
		building.BuildingID = fmt.Sprintf("building-%d", m.nextID)
	}
	m.buildings[*building.JwID] = building
	return nil
}

func (m *mockRoomRepo) UpsertRoomTypeByJwID(_ context.Context, roomType *model.RoomType) error {
	if existing, ok := m.roomTypes[roomType.JwID]; ok {
		roomType.RoomTypeID = existing.RoomTypeID
	} else {
		m.nextID++
		roomType.RoomTypeID = fmt.Sprintf("roomtype-%d", m.nextID)
	}
	m.roomTypes[roomType.JwID] = roomType
	return nil
}

func (m *mockRoomRepo) UpsertRoomByJwID(_ context.Context, room *model.Room) error {
	if existing, ok := m.rooms[*room.JwID]; ok {
		room.RoomID = existing.RoomID
	} else {
		m.nextID++
		room.RoomID = fmt.Sprintf("room-%d", m.nextID)
	}
	m.rooms[*room.JwID] = room
	return nil
}

func (m *mockRoomRepo) GetRoomByID(_ context.Context, id string) (*model.Room, error) {
	for _, r := range m.rooms {
		if r.RoomID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) ListRooms(_ context.Context, buildingID string) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		if buildingID != "" && (r.BuildingID == nil || *r.BuildingID != buildingID) {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRoomRepo) ListBuildings(_ context.Context) ([]model.Building, error) {
	var result []model.Building
	for _, b := range m.buildings {
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockRoomRepo) ListCampuses(_ context.Context) ([]model.Campus, error) {
	var result []model.Campus
	for _, c := range m.campuses {
		result = append(result, *c)
	}
	return result, nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	groups    map[int64]*model.ScheduleGroup
	schedules map[string][]model.Schedule // section_id 为键
	nextID    int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		groups:    make(map[int64]*model.ScheduleGroup),
		schedules: make(map[string][]model.Schedule),
	}
}

func (m *mockScheduleRepo) UpsertGroupByJwID(_ context.Context, group *model.ScheduleGroup) error {
	if existing, ok := m.groups[group.JwID]; ok {
		group.ScheduleGroupID = existing.ScheduleGroupID
	} else {
		m.nextID++
		group.ScheduleGroupID = fmt.Sprintf("group-%d", m.nextID)
	}
	m.groups[group.JwID] = group
	return nil
}

func (m *mockScheduleRepo) GetGroupByJwID(_ context.Context, jwID int64) (*model.ScheduleGroup, error) {
	if g, ok := m.groups[jwID]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) DeleteBySection(_ context.Context, sectionID string) error {
	delete(m.schedules, sectionID)
	return nil
}

func (m *mockScheduleRepo) BatchCreate(_ context.Context, schedules []model.Schedule) error {
	for i := range schedules {
		m.nextID++
		schedules[i].ScheduleID = fmt.Sprintf("schedule-%d", m.nextID)
		m.schedules[schedules[i].SectionID] = append(m.schedules[schedules[i].SectionID], schedules[i])
	}
	return nil
}

func (m *mockScheduleRepo) ListBySection(_ context.Context, sectionID string) ([]model.Schedule, error) {
	result := append([]model.Schedule(nil), m.schedules[sectionID]...)
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockScheduleRepo) ListGroupsBySection(_ context.Context, sectionID string) ([]model.ScheduleGroup, error) {
	var result []model.ScheduleGroup
	for _, g := range m.groups {
		if g.SectionID == sectionID {
			result = append(result, *g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].GroupNo < result[j].GroupNo })
	return result, nil
}

// ── 聚合 ──

type mockRepos struct {
	repo       *repository.Repository
	semester   *mockSemesterRepo
	department *mockDepartmentRepo
	lookup     *mockLookupRepo
	course     *mockCourseRepo
	section    *mockSectionRepo
	teacher    *mockTeacherRepo
	adminClass *mockAdminClassRepo
	room       *mockRoomRepo
	schedule   *mockScheduleRepo
}

func newMockRepos() *mockRepos {
	m := &mockRepos{
		semester:   newMockSemesterRepo(),
		department: newMockDepartmentRepo(),
		lookup:     newMockLookupRepo(),
		course:     newMockCourseRepo(),
		section:    newMockSectionRepo(),
		teacher:    newMockTeacherRepo(),
		adminClass: newMockAdminClassRepo(),
		room:       newMockRoomRepo(),
		schedule:   newMockScheduleRepo(),
	}
	m.repo = &repository.Repository{
		Semester:   m.semester,
		Department: m.department,
		Lookup:     m.lookup,
		Course:     m.course,
		Section:    m.section,
		Teacher:    m.teacher,
		AdminClass: m.adminClass,
		Room:       m.room,
		Schedule:   m.schedule,
	}
	return m
}

// mustDate 解析测试用日期
func mustDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}
