package model

// ── 名称作键的参照表 ──
//
// 均以中文显示名唯一标识，英文名可空；由通用 Upsert（repository 层）维护。
// Lookup 接口供泛型 Upsert 写入字段，避免反射。

// Lookup 参照表模型的写入口
type Lookup interface {
	SetNames(nameCN string, nameEN *string)
	GetNameCN() string
	GetNameEN() *string
}

// LookupNames 参照表公共字段
type LookupNames struct {
	NameCN string  `gorm:"column:name_cn;type:varchar(100);not null;uniqueIndex" json:"name_cn"`
	NameEN *string `gorm:"column:name_en;type:varchar(100)"                      json:"name_en,omitempty"`
}

// SetNames 覆盖写入中英文名（后到的更完整负载获胜）
func (n *LookupNames) SetNames(nameCN string, nameEN *string) {
	n.NameCN = nameCN
	n.NameEN = nameEN
}

func (n *LookupNames) GetNameCN() string  { return n.NameCN }
func (n *LookupNames) GetNameEN() *string { return n.NameEN }

// CourseType 课程类型（理论实验课 …）
type CourseType struct {
	CourseTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_type_id"`
	LookupNames
	BaseModel
}

func (CourseType) TableName() string { return "course_types" }

// CourseGradation 课程层次（专业选修 …）
type CourseGradation struct {
	CourseGradationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_gradation_id"`
	LookupNames
	BaseModel
}

func (CourseGradation) TableName() string { return "course_gradations" }

// CourseCategory 课程类别（本科计划内课程 …）
type CourseCategory struct {
	CourseCategoryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_category_id"`
	LookupNames
	BaseModel
}

func (CourseCategory) TableName() string { return "course_categories" }

// CourseClassify 课程范畴分类（科技与人文 …）
type CourseClassify struct {
	CourseClassifyID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_classify_id"`
	LookupNames
	BaseModel
}

func (CourseClassify) TableName() string { return "course_classifies" }

// ExamMode 考试方式（大作业（论文、报告、项目或作品等） …）
type ExamMode struct {
	ExamModeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_mode_id"`
	LookupNames
	BaseModel
}

func (ExamMode) TableName() string { return "exam_modes" }

// TeachLanguage 授课语言（中文 …）
type TeachLanguage struct {
	TeachLanguageID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teach_language_id"`
	LookupNames
	BaseModel
}

func (TeachLanguage) TableName() string { return "teach_languages" }

// EducationLevel 学历层次（本科生 / 研究生 / 本研贯通）
type EducationLevel struct {
	EducationLevelID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"education_level_id"`
	LookupNames
	BaseModel
}

func (EducationLevel) TableName() string { return "education_levels" }

// ClassType 课堂类型（基础 / 专业 …）
type ClassType struct {
	ClassTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_type_id"`
	LookupNames
	BaseModel
}

func (ClassType) TableName() string { return "class_types" }
