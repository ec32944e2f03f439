//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=signal password=signal_password dbname=signal_test sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.Semester{},
		&model.Department{},
		&model.CourseType{},
		&model.CourseGradation{},
		&model.CourseCategory{},
		&model.CourseClassify{},
		&model.ClassType{},
		&model.EducationLevel{},
		&model.ExamMode{},
		&model.TeachLanguage{},
		&model.Campus{},
		&model.Course{},
		&model.Teacher{},
		&model.AdminClass{},
		&model.Section{},
		&model.RoomType{},
		&model.Building{},
		&model.Room{},
		&model.ScheduleGroup{},
		&model.Schedule{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// uniqueJwID 基于纳秒时间戳生成测试内唯一的教务 ID
func uniqueJwID() int64 { return time.Now().UnixNano() % 1e15 }

// setupSection 创建一门课程和一条开课记录并返回清理函数
func setupSection(t *testing.T, repo *repository.Repository) (*model.Section, func()) {
	t.Helper()
	ctx := context.Background()

	courseJwID := uniqueJwID()
	course := &model.Course{
		JwID:   &courseJwID,
		Code:   fmt.Sprintf("TEST%d", courseJwID%1e6),
		NameCN: "集成测试课程",
	}
	if err := repo.Course.UpsertByJwID(ctx, course); err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}

	sectionJwID := uniqueJwID()
	section := &model.Section{
		JwID:     &sectionJwID,
		Code:     course.Code + ".01",
		CourseID: course.CourseID,
		Credits:  4,
	}
	if err := repo.Section.UpsertByJwID(ctx, section); err != nil {
		t.Fatalf("创建开课失败: %v", err)
	}

	cleanup := func() {
		testDB.Where("section_id = ?", section.SectionID).Delete(&model.Schedule{})
		testDB.Where("section_id = ?", section.SectionID).Delete(&model.Section{})
		testDB.Where("course_id = ?", course.CourseID).Delete(&model.Course{})
	}
	return section, cleanup
}

// ═══════════════════════════════════════════════════════════
// Upsert 幂等性
// ═══════════════════════════════════════════════════════════

func TestSemesterRepo_UpsertByJwID_Idempotent(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	jwID := uniqueJwID()

	first := &model.Semester{JwID: &jwID, Name: "2024秋", Code: "2024-fall"}
	created, err := repo.Semester.UpsertByJwID(ctx, first)
	if err != nil {
		t.Fatalf("首次 Upsert 失败: %v", err)
	}
	if !created {
		t.Error("首次 Upsert 应为新建")
	}
	defer testDB.Where("semester_id = ?", first.SemesterID).Delete(&model.Semester{})

	second := &model.Semester{JwID: &jwID, Name: "2024秋（修订）", Code: "2024-fall"}
	created, err = repo.Semester.UpsertByJwID(ctx, second)
	if err != nil {
		t.Fatalf("二次 Upsert 失败: %v", err)
	}
	if created {
		t.Error("二次 Upsert 应为覆盖")
	}
	if second.SemesterID != first.SemesterID {
		t.Errorf("二次 Upsert 应保留主键: %s != %s", second.SemesterID, first.SemesterID)
	}

	got, err := repo.Semester.GetByJwID(ctx, jwID)
	if err != nil {
		t.Fatalf("GetByJwID 失败: %v", err)
	}
	if got.Name != "2024秋（修订）" {
		t.Errorf("Name = %s, 期望覆盖后的值", got.Name)
	}
}

func TestSemesterRepo_List_DatelessSemesterSortsLast(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	datedJwID, datelessJwID := uniqueJwID(), uniqueJwID()
	start := time.Date(2099, 2, 17, 0, 0, 0, 0, time.UTC)
	dated := &model.Semester{JwID: &datedJwID, Name: "有日期学期", Code: "dated", StartDate: &start}
	dateless := &model.Semester{JwID: &datelessJwID, Name: "无日期学期", Code: "dateless"}
	for _, s := range []*model.Semester{dated, dateless} {
		if _, err := repo.Semester.UpsertByJwID(ctx, s); err != nil {
			t.Fatalf("Upsert 失败: %v", err)
		}
		defer testDB.Where("semester_id = ?", s.SemesterID).Delete(&model.Semester{})
	}

	semesters, err := repo.Semester.List(ctx)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	datedPos, datelessPos := -1, -1
	for i := range semesters {
		switch semesters[i].SemesterID {
		case dated.SemesterID:
			datedPos = i
		case dateless.SemesterID:
			datelessPos = i
		}
	}
	if datedPos < 0 || datelessPos < 0 {
		t.Fatalf("测试学期未出现在列表中: %d, %d", datedPos, datelessPos)
	}
	if datedPos > datelessPos {
		t.Errorf("无日期学期应排在带日期学期之后: dated=%d dateless=%d", datedPos, datelessPos)
	}
}

func TestSectionRepo_UpsertByJwID_PreservesPK(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	section, cleanup := setupSection(t, repo)
	defer cleanup()

	updated := &model.Section{
		JwID:     section.JwID,
		Code:     section.Code,
		CourseID: section.CourseID,
		Credits:  2,
		StdCount: 120,
	}
	if err := repo.Section.UpsertByJwID(ctx, updated); err != nil {
		t.Fatalf("二次 Upsert 失败: %v", err)
	}
	if updated.SectionID != section.SectionID {
		t.Errorf("主键应保留: %s != %s", updated.SectionID, section.SectionID)
	}

	got, err := repo.Section.GetByJwID(ctx, *section.JwID)
	if err != nil {
		t.Fatalf("GetByJwID 失败: %v", err)
	}
	if got.Credits != 2 || got.StdCount != 120 {
		t.Errorf("字段未覆盖: credits=%v std_count=%d", got.Credits, got.StdCount)
	}
}

// ═══════════════════════════════════════════════════════════
// 教师匹配链
// ═══════════════════════════════════════════════════════════

func TestTeacherRepo_FindByNameNoPersonID(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	name := fmt.Sprintf("测试教师-%d", time.Now().UnixNano())
	personID := uniqueJwID()

	bound := &model.Teacher{NameCN: name, PersonID: &personID}
	if err := repo.Teacher.Create(ctx, bound); err != nil {
		t.Fatalf("创建已绑定教师失败: %v", err)
	}
	defer testDB.Where("teacher_id = ?", bound.TeacherID).Delete(&model.Teacher{})

	unbound := &model.Teacher{NameCN: name}
	if err := repo.Teacher.Create(ctx, unbound); err != nil {
		t.Fatalf("创建未绑定教师失败: %v", err)
	}
	defer testDB.Where("teacher_id = ?", unbound.TeacherID).Delete(&model.Teacher{})

	got, err := repo.Teacher.FindByNameNoPersonID(ctx, name)
	if err != nil {
		t.Fatalf("FindByNameNoPersonID 失败: %v", err)
	}
	if got.TeacherID != unbound.TeacherID {
		t.Errorf("应命中未绑定 person_id 的教师, got %s", got.TeacherID)
	}

	byPerson, err := repo.Teacher.FindByPersonID(ctx, personID)
	if err != nil {
		t.Fatalf("FindByPersonID 失败: %v", err)
	}
	if byPerson.TeacherID != bound.TeacherID {
		t.Errorf("应命中已绑定教师, got %s", byPerson.TeacherID)
	}
}

// ═══════════════════════════════════════════════════════════
// 参照表英文名覆盖
// ═══════════════════════════════════════════════════════════

func TestLookupRepo_Upsert_OverwritesNameEN(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	name := fmt.Sprintf("测试类型-%d", time.Now().UnixNano())
	en := "Seminar"

	first, err := repo.Lookup.UpsertCourseType(ctx, name, &en)
	if err != nil {
		t.Fatalf("首次 Upsert 失败: %v", err)
	}
	defer testDB.Where("course_type_id = ?", first.CourseTypeID).Delete(&model.CourseType{})

	// 后续负载不带英文名时应清空，而非保留旧值
	second, err := repo.Lookup.UpsertCourseType(ctx, name, nil)
	if err != nil {
		t.Fatalf("二次 Upsert 失败: %v", err)
	}
	if second.CourseTypeID != first.CourseTypeID {
		t.Errorf("应命中同一记录: %s != %s", second.CourseTypeID, first.CourseTypeID)
	}

	var got model.CourseType
	if err := testDB.Where("course_type_id = ?", first.CourseTypeID).First(&got).Error; err != nil {
		t.Fatalf("读取参照记录失败: %v", err)
	}
	if got.NameEN != nil {
		t.Errorf("name_en 应被清空, got %q", *got.NameEN)
	}
}

// ═══════════════════════════════════════════════════════════
// 校区 jw_id 回填
// ═══════════════════════════════════════════════════════════

func TestRoomRepo_UpsertCampus_BackfillsJwID(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	name := fmt.Sprintf("测试校区-%d", time.Now().UnixNano())

	// 目录导入阶段只有名称
	byName := &model.Campus{NameCN: name}
	if err := repo.Room.UpsertCampus(ctx, byName); err != nil {
		t.Fatalf("按名称 Upsert 失败: %v", err)
	}
	defer testDB.Where("campus_id = ?", byName.CampusID).Delete(&model.Campus{})

	// 排课同步阶段拿到教务 ID，应回填到同一条记录
	jwID := uniqueJwID()
	byJw := &model.Campus{JwID: &jwID, NameCN: name}
	if err := repo.Room.UpsertCampus(ctx, byJw); err != nil {
		t.Fatalf("带教务 ID Upsert 失败: %v", err)
	}
	if byJw.CampusID != byName.CampusID {
		t.Errorf("应命中同一校区: %s != %s", byJw.CampusID, byName.CampusID)
	}

	var got model.Campus
	if err := testDB.Where("campus_id = ?", byName.CampusID).First(&got).Error; err != nil {
		t.Fatalf("读取校区失败: %v", err)
	}
	if got.JwID == nil || *got.JwID != jwID {
		t.Errorf("jw_id 未回填: %v", got.JwID)
	}
}

// ═══════════════════════════════════════════════════════════
// 排课整体替换
// ═══════════════════════════════════════════════════════════

func TestScheduleRepo_ReplaceBySection(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	section, cleanup := setupSection(t, repo)
	defer cleanup()

	old := []model.Schedule{
		{SectionID: section.SectionID, Date: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), StartTime: 470, EndTime: 565},
	}
	if err := repo.Schedule.BatchCreate(ctx, old); err != nil {
		t.Fatalf("首轮 BatchCreate 失败: %v", err)
	}

	if err := repo.Schedule.DeleteBySection(ctx, section.SectionID); err != nil {
		t.Fatalf("DeleteBySection 失败: %v", err)
	}
	rebuilt := []model.Schedule{
		{SectionID: section.SectionID, Date: time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC), StartTime: 850, EndTime: 945},
		{SectionID: section.SectionID, Date: time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC), StartTime: 470, EndTime: 565},
	}
	if err := repo.Schedule.BatchCreate(ctx, rebuilt); err != nil {
		t.Fatalf("重建 BatchCreate 失败: %v", err)
	}

	got, err := repo.Schedule.ListBySection(ctx, section.SectionID)
	if err != nil {
		t.Fatalf("ListBySection 失败: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, 期望旧记录被整体替换为 2 条", len(got))
	}
	// 日期、开始时间升序
	if got[0].StartTime != 470 || got[1].StartTime != 850 {
		t.Errorf("排序错误: %d, %d", got[0].StartTime, got[1].StartTime)
	}
}

// ═══════════════════════════════════════════════════════════
// 事务
// ═══════════════════════════════════════════════════════════

func TestTransaction_Rollback(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	jwID := uniqueJwID()

	wantErr := errors.New("导入失败")
	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		semester := &model.Semester{JwID: &jwID, Name: "回滚学期", Code: "rollback"}
		if _, err := tx.Semester.UpsertByJwID(ctx, semester); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, 期望透传业务错误", err)
	}

	if _, err := repo.Semester.GetByJwID(ctx, jwID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("事务内写入应已回滚, err = %v", err)
	}
}

func TestTransaction_Commit(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	jwID := uniqueJwID()

	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		semester := &model.Semester{JwID: &jwID, Name: "提交学期", Code: "commit"}
		_, err := tx.Semester.UpsertByJwID(ctx, semester)
		return err
	})
	if err != nil {
		t.Fatalf("Transaction 失败: %v", err)
	}

	got, err := repo.Semester.GetByJwID(ctx, jwID)
	if err != nil {
		t.Fatalf("GetByJwID 失败: %v", err)
	}
	defer testDB.Where("semester_id = ?", got.SemesterID).Delete(&model.Semester{})
	if got.Name != "提交学期" {
		t.Errorf("Name = %s", got.Name)
	}
}
