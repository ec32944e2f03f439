package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// SectionListFilter 开课列表查询条件，零值字段不参与过滤
type SectionListFilter struct {
	SemesterID   string
	DepartmentID string
	CampusID     string
	CourseCode   string
	Keyword      string // 课程名模糊匹配
	Offset       int
	Limit        int
}

// SectionRepository 开课数据访问接口
type SectionRepository interface {
	// UpsertByJwID 按教务 ID 新建或整体覆盖开课记录（不含多对多关联）
	UpsertByJwID(ctx context.Context, section *model.Section) error
	GetByID(ctx context.Context, id string) (*model.Section, error)
	GetByJwID(ctx context.Context, jwID int64) (*model.Section, error)
	// ReplaceTeachers 整体替换开课的任课教师关联
	ReplaceTeachers(ctx context.Context, section *model.Section, teachers []model.Teacher) error
	// ReplaceAdminClasses 整体替换开课的行政班关联
	ReplaceAdminClasses(ctx context.Context, section *model.Section, classes []model.AdminClass) error
	// ListJwIDsBySemester 列出学期内全部开课的教务 ID
	ListJwIDsBySemester(ctx context.Context, semesterID string) ([]int64, error)
	List(ctx context.Context, filter SectionListFilter) ([]model.Section, int64, error)
}

type sectionRepo struct {
	db *gorm.DB
}

// NewSectionRepo 创建 SectionRepository 实例
func NewSectionRepo(db *gorm.DB) SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) UpsertByJwID(ctx context.Context, section *model.Section) error {
	var existing model.Section
	err := r.db.WithContext(ctx).
		Where("jw_id = ?", section.JwID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Omit("Teachers", "AdminClasses").Create(section).Error
	}
	if err != nil {
		return err
	}
	section.SectionID = existing.SectionID
	section.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Omit("Teachers", "AdminClasses").Save(section).Error
}

func (r *sectionRepo) GetByID(ctx context.Context, id string) (*model.Section, error) {
	var section model.Section
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Semester").
		Preload("OpenDepartment").
		Preload("Campus").
		Preload("ExamMode").
		Preload("TeachLanguage").
		Preload("Teachers").
		Preload("AdminClasses").
		Where("section_id = ?", id).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepo) GetByJwID(ctx context.Context, jwID int64) (*model.Section, error) {
	var section model.Section
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Semester").
		Preload("Teachers").
		Where("jw_id = ?", jwID).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepo) ReplaceTeachers(ctx context.Context, section *model.Section, teachers []model.Teacher) error {
	return r.db.WithContext(ctx).
		Model(section).
		Association("Teachers").
		Replace(teachers)
}

func (r *sectionRepo) ReplaceAdminClasses(ctx context.Context, section *model.Section, classes []model.AdminClass) error {
	return r.db.WithContext(ctx).
		Model(section).
		Association("AdminClasses").
		Replace(classes)
}

func (r *sectionRepo) ListJwIDsBySemester(ctx context.Context, semesterID string) ([]int64, error) {
	var jwIDs []int64
	err := r.db.WithContext(ctx).
		Model(&model.Section{}).
		Where("semester_id = ? AND jw_id IS NOT NULL", semesterID).
		Pluck("jw_id", &jwIDs).Error
	return jwIDs, err
}

func (r *sectionRepo) List(ctx context.Context, filter SectionListFilter) ([]model.Section, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Section{})
	if filter.SemesterID != "" {
		query = query.Where("sections.semester_id = ?", filter.SemesterID)
	}
	if filter.DepartmentID != "" {
		query = query.Where("sections.open_department_id = ?", filter.DepartmentID)
	}
	if filter.CampusID != "" {
		query = query.Where("sections.campus_id = ?", filter.CampusID)
	}
	if filter.CourseCode != "" || filter.Keyword != "" {
		query = query.Joins("JOIN courses ON courses.course_id = sections.course_id")
		if filter.CourseCode != "" {
			query = query.Where("courses.code = ?", filter.CourseCode)
		}
		if filter.Keyword != "" {
			query = query.Where("courses.name_cn LIKE ?", "%"+filter.Keyword+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sections []model.Section
	err := query.
		Preload("Course").
		Preload("OpenDepartment").
		Preload("Teachers").
		Order("sections.code ASC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&sections).Error
	return sections, total, err
}
