package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
	"github.com/SiGNAL-Team/server/internal/upstream"
)

// ── 目录导入模块业务错误 ──

var ErrNoLessons = errors.New("上游未返回任何开课")

// LessonCatalog 目录导入依赖的上游接口
type LessonCatalog interface {
	FetchLessons(ctx context.Context, semesterJwID int64) ([]upstream.LessonJSON, error)
}

// ImportStats 一次学期导入的结果统计
type ImportStats struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Errors  int `json:"errors"`
}

// CatalogService 目录导入业务接口
//
// 单条开课的全部写入在一个事务内完成，失败只影响该条，
// 同批其余开课照常导入
type CatalogService interface {
	// ImportSemester 导入学期的全部开课（课程、参照表、教师、行政班）
	ImportSemester(ctx context.Context, semester *model.Semester) (*ImportStats, error)
}

type catalogService struct {
	repo    *repository.Repository
	catalog LessonCatalog
	logger  *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(repo *repository.Repository, catalog LessonCatalog, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, catalog: catalog, logger: logger}
}

func (s *catalogService) ImportSemester(ctx context.Context, semester *model.Semester) (*ImportStats, error) {
	if semester.JwID == nil {
		return nil, ErrSemesterNotFound
	}
	s.logger.Info("开始导入学期开课",
		zap.String("semester", semester.Name),
		zap.String("code", semester.Code))

	lessons, err := s.catalog.FetchLessons(ctx, *semester.JwID)
	if err != nil {
		s.logger.Error("拉取开课列表失败", zap.Int64("semester_jw_id", *semester.JwID), zap.Error(err))
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, ErrNoLessons
	}

	stats := &ImportStats{Total: len(lessons)}
	progressStep := len(lessons) / 10
	if progressStep == 0 {
		progressStep = 1
	}

	for i := range lessons {
		lesson := &lessons[i]
		created, err := s.importLesson(ctx, lesson, semester)
		if err != nil {
			stats.Errors++
			s.logger.Error("开课导入失败",
				zap.Int64("jw_id", lesson.ID),
				zap.String("code", lesson.Code),
				zap.Error(err))
		} else if created {
			stats.Created++
		} else {
			stats.Updated++
		}

		if (i+1)%progressStep == 0 || i+1 == len(lessons) {
			s.logger.Info("导入进度",
				zap.Int("done", i+1),
				zap.Int("total", len(lessons)),
				zap.Int("errors", stats.Errors))
		}
	}

	s.logger.Info("学期开课导入完成",
		zap.String("semester", semester.Name),
		zap.Int("created", stats.Created),
		zap.Int("updated", stats.Updated),
		zap.Int("errors", stats.Errors))
	return stats, nil
}

// importLesson 在单个事务内导入一条开课及其全部关联
func (s *catalogService) importLesson(ctx context.Context, lesson *upstream.LessonJSON, semester *model.Semester) (created bool, err error) {
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		// 课程与六个参照表
		course, err := s.upsertCourse(ctx, tx, lesson)
		if err != nil {
			return err
		}

		// 开课主记录
		section, wasCreated, err := s.upsertSection(ctx, tx, lesson, course, semester)
		if err != nil {
			return err
		}
		created = wasCreated

		// 教师与行政班整体替换
		if err := s.replaceTeachers(ctx, tx, section, lesson.TeacherAssignmentList); err != nil {
			return err
		}
		return s.replaceAdminClasses(ctx, tx, section, lesson.AdminClasses)
	})
	return created, err
}

func (s *catalogService) upsertCourse(ctx context.Context, tx *repository.Repository, lesson *upstream.LessonJSON) (*model.Course, error) {
	courseType, err := tx.Lookup.UpsertCourseType(ctx, lesson.CourseType.Cn, lesson.CourseType.En)
	if err != nil {
		return nil, err
	}
	gradation, err := tx.Lookup.UpsertCourseGradation(ctx, lesson.CourseGradation.Cn, lesson.CourseGradation.En)
	if err != nil {
		return nil, err
	}
	category, err := tx.Lookup.UpsertCourseCategory(ctx, lesson.CourseCategory.Cn, lesson.CourseCategory.En)
	if err != nil {
		return nil, err
	}
	classify, err := tx.Lookup.UpsertCourseClassify(ctx, lesson.CourseClassify.Cn, lesson.CourseClassify.En)
	if err != nil {
		return nil, err
	}
	classType, err := tx.Lookup.UpsertClassType(ctx, lesson.ClassType.Cn, lesson.ClassType.En)
	if err != nil {
		return nil, err
	}
	education, err := tx.Lookup.UpsertEducationLevel(ctx, lesson.Education.Cn, lesson.Education.En)
	if err != nil {
		return nil, err
	}

	courseJwID := lesson.Course.ID
	course := &model.Course{
		JwID:   &courseJwID,
		Code:   lesson.Course.Code,
		NameCN: lesson.Course.Cn,
		NameEN: lesson.Course.En,
	}
	if courseType != nil {
		course.TypeID = &courseType.CourseTypeID
	}
	if gradation != nil {
		course.GradationID = &gradation.CourseGradationID
	}
	if category != nil {
		course.CategoryID = &category.CourseCategoryID
	}
	if classify != nil {
		course.ClassifyID = &classify.CourseClassifyID
	}
	if classType != nil {
		course.ClassTypeID = &classType.ClassTypeID
	}
	if education != nil {
		course.EducationLevelID = &education.EducationLevelID
	}
	if err := tx.Course.UpsertByJwID(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *catalogService) upsertSection(ctx context.Context, tx *repository.Repository, lesson *upstream.LessonJSON, course *model.Course, semester *model.Semester) (*model.Section, bool, error) {
	dept := &model.Department{
		Code:      lesson.OpenDepartment.Code,
		NameCN:    lesson.OpenDepartment.Cn,
		NameEN:    lesson.OpenDepartment.En,
		IsCollege: lesson.OpenDepartment.College,
	}
	if err := tx.Department.UpsertByCode(ctx, dept); err != nil {
		return nil, false, err
	}

	examMode, err := tx.Lookup.UpsertExamMode(ctx, lesson.ExamMode.Cn, lesson.ExamMode.En)
	if err != nil {
		return nil, false, err
	}
	teachLang, err := tx.Lookup.UpsertTeachLanguage(ctx, lesson.TeachLang.Cn, lesson.TeachLang.En)
	if err != nil {
		return nil, false, err
	}

	// 目录负载里校区只有名称，按中文名归并
	var campusID *string
	if lesson.Campus.Cn != "" {
		campus := &model.Campus{NameCN: lesson.Campus.Cn, NameEN: lesson.Campus.En}
		if err := tx.Room.UpsertCampus(ctx, campus); err != nil {
			return nil, false, err
		}
		campusID = &campus.CampusID
	}

	sectionJwID := lesson.ID
	section := &model.Section{
		JwID:                    &sectionJwID,
		Code:                    lesson.Code,
		CourseID:                course.CourseID,
		SemesterID:              &semester.SemesterID,
		Credits:                 lesson.Credits,
		Period:                  lesson.Period,
		PeriodsPerWeek:          lesson.PeriodsPerWeek,
		StdCount:                lesson.StdCount,
		LimitCount:              lesson.LimitCount,
		GraduateAndPostgraduate: lesson.GraduateAndPostgraduate,
		DateTimePlaceText:       lesson.DateTimePlaceText,
		OpenDepartmentID:        &dept.DepartmentID,
		CampusID:                campusID,
	}
	if len(lesson.DateTimePlacePersonText) > 0 {
		section.DateTimePlacePersonText = datatypes.JSON(lesson.DateTimePlacePersonText)
	}
	if examMode != nil {
		section.ExamModeID = &examMode.ExamModeID
	}
	if teachLang != nil {
		section.TeachLanguageID = &teachLang.TeachLanguageID
	}

	// 区分新建与更新：先查一次再 Upsert
	_, err = tx.Section.GetByJwID(ctx, sectionJwID)
	created := isNotFound(err)
	if err != nil && !created {
		return nil, false, err
	}
	if err := tx.Section.UpsertByJwID(ctx, section); err != nil {
		return nil, false, err
	}
	return section, created, nil
}

// replaceTeachers 整体替换开课的任课教师，保持教师身份归并规则：
// 同名且尚未绑定 person_id 的记录优先复用，避免重复建档
func (s *catalogService) replaceTeachers(ctx context.Context, tx *repository.Repository, section *model.Section, assignments []upstream.TeacherAssignmentJSON) error {
	teachers := make([]model.Teacher, 0, len(assignments))
	for _, t := range assignments {
		if t.Cn == "" {
			continue
		}
		var deptID *string
		if t.DepartmentCode != "" {
			dept, err := tx.Department.GetOrCreateByCode(ctx, t.DepartmentCode)
			if err != nil {
				return err
			}
			deptID = &dept.DepartmentID
		}

		teacher, err := tx.Teacher.FindByName(ctx, t.Cn)
		if isNotFound(err) {
			teacher = &model.Teacher{NameCN: t.Cn, NameEN: t.En, DepartmentID: deptID}
			if err := tx.Teacher.Create(ctx, teacher); err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			teacher.NameEN = t.En
			if deptID != nil {
				teacher.DepartmentID = deptID
			}
			if err := tx.Teacher.Save(ctx, teacher); err != nil {
				return err
			}
		}
		teachers = append(teachers, *teacher)
	}
	return tx.Section.ReplaceTeachers(ctx, section, teachers)
}

func (s *catalogService) replaceAdminClasses(ctx context.Context, tx *repository.Repository, section *model.Section, classes []upstream.NamePair) error {
	result := make([]model.AdminClass, 0, len(classes))
	for _, c := range classes {
		if c.Cn == "" {
			continue
		}
		nameEN := ""
		if c.En != nil {
			nameEN = *c.En
		}
		cls, err := tx.AdminClass.GetOrCreateByName(ctx, c.Cn, nameEN)
		if err != nil {
			return err
		}
		result = append(result, *cls)
	}
	return tx.Section.ReplaceAdminClasses(ctx, section, result)
}
