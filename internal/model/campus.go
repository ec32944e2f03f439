package model

// Campus 校区表 — 对应 campuses
//
// 课表导入只有中文名（按 name_cn 匹配），排课数据带 jw_id（优先按 jw_id 匹配），
// 因此两个键都是唯一索引。
type Campus struct {
	CampusID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"campus_id"`
	JwID     *int64  `gorm:"uniqueIndex"                                    json:"jw_id,omitempty"`
	NameCN   string  `gorm:"column:name_cn;type:varchar(100);not null;uniqueIndex" json:"name_cn"`
	NameEN   *string `gorm:"column:name_en;type:varchar(100)"               json:"name_en,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Campus) TableName() string { return "campuses" }
