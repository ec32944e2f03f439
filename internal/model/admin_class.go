package model

// AdminClass 行政班表 — 对应 admin_classes，以中文名唯一标识
type AdminClass struct {
	AdminClassID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"admin_class_id"`
	NameCN       string `gorm:"column:name_cn;type:varchar(100);not null;uniqueIndex" json:"name_cn"`
	NameEN       string `gorm:"column:name_en;type:varchar(100);not null;default:''"  json:"name_en"`
	BaseModel
}

// TableName 指定表名
func (AdminClass) TableName() string { return "admin_classes" }
