package model

// Course 课程表 — 对应 courses
// 一门课程跨学期聚合多条开课记录；六个参照表引用均可空
type Course struct {
	CourseID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	JwID     *int64 `gorm:"uniqueIndex"                                    json:"jw_id,omitempty"`
	Code     string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	NameCN   string `gorm:"column:name_cn;type:varchar(100);not null"      json:"name_cn"`
	NameEN   string `gorm:"column:name_en;type:varchar(100);not null;default:''" json:"name_en"`

	TypeID           *string `gorm:"type:uuid" json:"type_id,omitempty"`
	GradationID      *string `gorm:"type:uuid" json:"gradation_id,omitempty"`
	CategoryID       *string `gorm:"type:uuid" json:"category_id,omitempty"`
	ClassifyID       *string `gorm:"type:uuid" json:"classify_id,omitempty"`
	ClassTypeID      *string `gorm:"type:uuid" json:"class_type_id,omitempty"`
	EducationLevelID *string `gorm:"type:uuid" json:"education_level_id,omitempty"`
	BaseModel

	// 关联
	Type           *CourseType      `gorm:"foreignKey:TypeID;references:CourseTypeID"                json:"type,omitempty"`
	Gradation      *CourseGradation `gorm:"foreignKey:GradationID;references:CourseGradationID"      json:"gradation,omitempty"`
	Category       *CourseCategory  `gorm:"foreignKey:CategoryID;references:CourseCategoryID"        json:"category,omitempty"`
	Classify       *CourseClassify  `gorm:"foreignKey:ClassifyID;references:CourseClassifyID"        json:"classify,omitempty"`
	ClassType      *ClassType       `gorm:"foreignKey:ClassTypeID;references:ClassTypeID"            json:"class_type,omitempty"`
	EducationLevel *EducationLevel  `gorm:"foreignKey:EducationLevelID;references:EducationLevelID"  json:"education_level,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
