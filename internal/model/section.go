package model

import "gorm.io/datatypes"

// Section 开课表 — 对应 sections
//
// jw_id 是 Upsert 的唯一键；teachers / admin_classes 两个多对多关联
// 在每轮导入时整体替换（清空后重建），上游移除的教师本地同步移除。
type Section struct {
	SectionID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"section_id"`
	JwID      *int64 `gorm:"uniqueIndex"                                    json:"jw_id,omitempty"`
	Code      string `gorm:"type:varchar(20);not null"                      json:"code"`
	CourseID  string `gorm:"type:uuid;not null"                             json:"course_id"`
	// 开课可能先于学期归属信息被导入
	SemesterID *string `gorm:"type:uuid" json:"semester_id,omitempty"`

	Credits                 float64 `gorm:"not null;default:0" json:"credits"`            // 学分
	Period                  int     `gorm:"not null;default:0" json:"period"`             // 学时
	PeriodsPerWeek          int     `gorm:"not null;default:0" json:"periods_per_week"`   // 每周学时
	StdCount                int     `gorm:"not null;default:0" json:"std_count"`          // 选课人数
	LimitCount              int     `gorm:"not null;default:0" json:"limit_count"`        // 限选人数
	GraduateAndPostgraduate bool    `gorm:"not null;default:false" json:"graduate_and_postgraduate"` // 是否本研贯通

	DateTimePlaceText       *string        `gorm:"type:text"  json:"date_time_place_text,omitempty"`
	DateTimePlacePersonText datatypes.JSON `gorm:"type:jsonb" json:"date_time_place_person_text,omitempty"`

	OpenDepartmentID *string `gorm:"type:uuid" json:"open_department_id,omitempty"`
	CampusID         *string `gorm:"type:uuid" json:"campus_id,omitempty"`
	ExamModeID       *string `gorm:"type:uuid" json:"exam_mode_id,omitempty"`
	TeachLanguageID  *string `gorm:"type:uuid" json:"teach_language_id,omitempty"`
	BaseModel

	// 关联
	Course         *Course       `gorm:"foreignKey:CourseID;references:CourseID"               json:"course,omitempty"`
	Semester       *Semester     `gorm:"foreignKey:SemesterID;references:SemesterID"           json:"semester,omitempty"`
	OpenDepartment *Department   `gorm:"foreignKey:OpenDepartmentID;references:DepartmentID"   json:"open_department,omitempty"`
	Campus         *Campus       `gorm:"foreignKey:CampusID;references:CampusID"               json:"campus,omitempty"`
	ExamMode       *ExamMode     `gorm:"foreignKey:ExamModeID;references:ExamModeID"           json:"exam_mode,omitempty"`
	TeachLanguage  *TeachLanguage `gorm:"foreignKey:TeachLanguageID;references:TeachLanguageID" json:"teach_language,omitempty"`
	Teachers       []Teacher     `gorm:"many2many:section_teachers;foreignKey:SectionID;joinForeignKey:SectionID;references:TeacherID;joinReferences:TeacherID"            json:"teachers,omitempty"`
	AdminClasses   []AdminClass  `gorm:"many2many:section_admin_classes;foreignKey:SectionID;joinForeignKey:SectionID;references:AdminClassID;joinReferences:AdminClassID" json:"admin_classes,omitempty"`
}

// TableName 指定表名
func (Section) TableName() string { return "sections" }
