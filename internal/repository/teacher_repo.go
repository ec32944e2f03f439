package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SiGNAL-Team/server/internal/model"
)

// TeacherRepository 教师数据访问接口
//
// 上游早期负载只有姓名，后期才带 person_id，同名教师可能先以
// 无 person_id 的记录存在；身份归并的查找顺序由 service 层编排
type TeacherRepository interface {
	FindByPersonID(ctx context.Context, personID int64) (*model.Teacher, error)
	// FindByNameNoPersonID 查找同名且尚未绑定 person_id 的教师
	FindByNameNoPersonID(ctx context.Context, nameCN string) (*model.Teacher, error)
	FindByName(ctx context.Context, nameCN string) (*model.Teacher, error)
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	Create(ctx context.Context, teacher *model.Teacher) error
	Save(ctx context.Context, teacher *model.Teacher) error
	List(ctx context.Context, offset, limit int) ([]model.Teacher, int64, error)
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo 创建 TeacherRepository 实例
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) FindByPersonID(ctx context.Context, personID int64) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) FindByNameNoPersonID(ctx context.Context, nameCN string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("name_cn = ? AND person_id IS NULL", nameCN).
		Order("created_at ASC").
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) FindByName(ctx context.Context, nameCN string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("name_cn = ?", nameCN).
		Order("created_at ASC").
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepo) Save(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepo) List(ctx context.Context, offset, limit int) ([]model.Teacher, int64, error) {
	var teachers []model.Teacher
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Teacher{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("name_cn ASC").
		Offset(offset).Limit(limit).
		Find(&teachers).Error
	return teachers, total, err
}
