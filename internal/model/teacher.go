package model

// Teacher 教师表 — 对应 teachers
//
// person_id / jw_teacher_id 由排课数据补齐；课表导入阶段只有姓名与单位，
// 因此存在 person_id 为空的记录，匹配时优先按 person_id、再按姓名回退。
type Teacher struct {
	TeacherID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	JwTeacherID  *int64  `gorm:"column:jw_teacher_id"                           json:"jw_teacher_id,omitempty"`
	PersonID     *int64  `gorm:"uniqueIndex"                                    json:"person_id,omitempty"`
	NameCN       string  `gorm:"column:name_cn;type:varchar(100);not null;index" json:"name_cn"`
	NameEN       string  `gorm:"column:name_en;type:varchar(100);not null;default:''" json:"name_en"`
	DepartmentID *string `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	BaseModel

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }
