package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// LookupRepository 名称作键的参照表数据访问接口
//
// 各方法按中文名 Upsert：不存在则创建，存在则以本次负载无条件覆盖英文名；
// 中文名为空时返回 (nil, nil)，调用方据此写空外键
type LookupRepository interface {
	UpsertCourseType(ctx context.Context, nameCN string, nameEN *string) (*model.CourseType, error)
	UpsertCourseGradation(ctx context.Context, nameCN string, nameEN *string) (*model.CourseGradation, error)
	UpsertCourseCategory(ctx context.Context, nameCN string, nameEN *string) (*model.CourseCategory, error)
	UpsertCourseClassify(ctx context.Context, nameCN string, nameEN *string) (*model.CourseClassify, error)
	UpsertExamMode(ctx context.Context, nameCN string, nameEN *string) (*model.ExamMode, error)
	UpsertTeachLanguage(ctx context.Context, nameCN string, nameEN *string) (*model.TeachLanguage, error)
	UpsertEducationLevel(ctx context.Context, nameCN string, nameEN *string) (*model.EducationLevel, error)
	UpsertClassType(ctx context.Context, nameCN string, nameEN *string) (*model.ClassType, error)

	ListCourseTypes(ctx context.Context) ([]model.CourseType, error)
	ListCourseGradations(ctx context.Context) ([]model.CourseGradation, error)
	ListCourseCategories(ctx context.Context) ([]model.CourseCategory, error)
	ListCourseClassifies(ctx context.Context) ([]model.CourseClassify, error)
	ListExamModes(ctx context.Context) ([]model.ExamMode, error)
	ListTeachLanguages(ctx context.Context) ([]model.TeachLanguage, error)
	ListEducationLevels(ctx context.Context) ([]model.EducationLevel, error)
	ListClassTypes(ctx context.Context) ([]model.ClassType, error)
}

type lookupRepo struct {
	db *gorm.DB
}

// NewLookupRepo 创建 LookupRepository 实例
func NewLookupRepo(db *gorm.DB) LookupRepository {
	return &lookupRepo{db: db}
}

// upsertLookup 按 name_cn 查找或创建参照记录，存在时无条件覆盖 name_en
func upsertLookup[T any, PT interface {
	*T
	model.Lookup
}](ctx context.Context, db *gorm.DB, nameCN string, nameEN *string) (PT, error) {
	if nameCN == "" {
		return nil, nil
	}
	var record T
	p := PT(&record)
	err := db.WithContext(ctx).
		Where("name_cn = ?", nameCN).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p.SetNames(nameCN, nameEN)
		if err := db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	// 英文名以最近一次负载为准，负载未携带时同样清空
	p.SetNames(nameCN, nameEN)
	if err := db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *lookupRepo) UpsertCourseType(ctx context.Context, nameCN string, nameEN *string) (*model.CourseType, error) {
	return upsertLookup[model.CourseType](ctx, r.db, nameCN, nameEN)
}

func (r *lookupRepo) UpsertCourseGradation(ctx context.Context, nameCN string, nameEN *string) (*model.CourseGradation, error) {
	return upsertLookup[model.CourseGradation](ctx, r.db, nameCN, nameEN)
}

func (r *lookupRepo) UpsertCourseCategory(ctx context.Context, nameCN string, nameEN *string) (*model.CourseCategory, error) {
	return upsertLookup[model.CourseCategory](ctx, r.db, nameCN, nameEN)
}

func (r *lookupRepo) UpsertCourseClassify(ctx context.Context, nameCN string, nameEN *string) (*model.CourseClassify, error) {
	return upsertLookup[model.CourseClassify](ctx, r.db, nameCN, nameEN)
}

func (r *lookupRepo) UpsertExamMode(ctx context.Context, nameCN string, nameEN *string) (*model.ExamMode, error) {
	return upsertLookup[model.ExamMode](ctx, r.db, nameCN, nameEN)
}

func (r *lookupRepo) UpsertTeachLanguage(ctx context.Context, nameCN string, nameEN *string) (*model.TeachLanguage, error) {
	return upsertLookup[model.TeachLanguage](ctx, r.db, nameCN, nameEN)
}

func (r *lookupRepo) UpsertEducationLevel(ctx context.Context, nameCN string, nameEN *string) (*model.EducationLevel, error) {
	return upsertLookup[model.EducationLevel](ctx, r.db, nameCN, nameEN)
}

func (r *lookupRepo) UpsertClassType(ctx context.Context, nameCN string, nameEN *string) (*model.ClassType, error) {
	return upsertLookup[model.ClassType](ctx, r.db, nameCN, nameEN)
}

// listLookup 按中文名升序返回参照表全部记录
func listLookup[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var records []T
	err := db.WithContext(ctx).Order("name_cn ASC").Find(&records).Error
	return records, err
}

func (r *lookupRepo) ListCourseTypes(ctx context.Context) ([]model.CourseType, error) {
	return listLookup[model.CourseType](ctx, r.db)
}

func (r *lookupRepo) ListCourseGradations(ctx context.Context) ([]model.CourseGradation, error) {
	return listLookup[model.CourseGradation](ctx, r.db)
}

func (r *lookupRepo) ListCourseCategories(ctx context.Context) ([]model.CourseCategory, error) {
	return listLookup[model.CourseCategory](ctx, r.db)
}

func (r *lookupRepo) ListCourseClassifies(ctx context.Context) ([]model.CourseClassify, error) {
	return listLookup[model.CourseClassify](ctx, r.db)
}

func (r *lookupRepo) ListExamModes(ctx context.Context) ([]model.ExamMode, error) {
	return listLookup[model.ExamMode](ctx, r.db)
}

func (r *lookupRepo) ListTeachLanguages(ctx context.Context) ([]model.TeachLanguage, error) {
	return listLookup[model.TeachLanguage](ctx, r.db)
}

func (r *lookupRepo) ListEducationLevels(ctx context.Context) ([]model.EducationLevel, error) {
	return listLookup[model.EducationLevel](ctx, r.db)
}

func (r *lookupRepo) ListClassTypes(ctx context.Context) ([]model.ClassType, error) {
	return listLookup[model.ClassType](ctx, r.db)
}
