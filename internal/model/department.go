package model

// Department 开课单位表 — 对应 departments
//
// code 为自然键（上游的单位编号）。单位可能先被教师任职信息按编号
// 隐式建立（中文名为占位符），之后由完整导入按同一编号升级补全。
type Department struct {
	DepartmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Code         string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	NameCN       string `gorm:"column:name_cn;type:varchar(100);not null"      json:"name_cn"`
	NameEN       string `gorm:"column:name_en;type:varchar(100);not null;default:''" json:"name_en"`
	IsCollege    bool   `gorm:"not null;default:false"                         json:"is_college"`
	BaseModel
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }
