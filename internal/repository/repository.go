package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Semester   SemesterRepository
	Department DepartmentRepository
	Lookup     LookupRepository
	Course     CourseRepository
	Section    SectionRepository
	Teacher    TeacherRepository
	AdminClass AdminClassRepository
	Room       RoomRepository
	Schedule   ScheduleRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Semester:   NewSemesterRepo(db),
		Department: NewDepartmentRepo(db),
		Lookup:     NewLookupRepo(db),
		Course:     NewCourseRepo(db),
		Section:    NewSectionRepo(db),
		Teacher:    NewTeacherRepo(db),
		AdminClass: NewAdminClassRepo(db),
		Room:       NewRoomRepo(db),
		Schedule:   NewScheduleRepo(db),
	}
}

// Transaction 在单个数据库事务内执行 fn，fn 收到的 Repository
// 绑定事务连接；fn 返回错误时整体回滚
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
