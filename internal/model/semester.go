package model

import "time"

// Semester 学期表 — 对应 semesters
// jw_id 为上游分配的外部 ID，作幂等匹配键；列表默认按开学日期降序
type Semester struct {
	SemesterID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"semester_id"`
	JwID       *int64     `gorm:"uniqueIndex"                                    json:"jw_id,omitempty"`
	Name       string     `gorm:"type:varchar(100);not null"                     json:"name"`
	Code       string     `gorm:"type:varchar(20);not null"                      json:"code"`
	StartDate  *time.Time `gorm:"type:date"                                      json:"start_date,omitempty"`
	EndDate    *time.Time `gorm:"type:date"                                      json:"end_date,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }
