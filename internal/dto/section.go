package dto

import "encoding/json"

// SectionListRequest 开课列表查询参数
type SectionListRequest struct {
	SemesterID   string `form:"semester_id"`
	DepartmentID string `form:"department_id"`
	CampusID     string `form:"campus_id"`
	CourseCode   string `form:"course_code"`
	Keyword      string `form:"keyword"`
	Page         int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// CourseResponse 课程响应
type CourseResponse struct {
	CourseID string  `json:"course_id"`
	JwID     *int64  `json:"jw_id,omitempty"`
	Code     string  `json:"code"`
	NameCN   string  `json:"name_cn"`
	NameEN   string  `json:"name_en"`
	Type     *string `json:"type,omitempty"`
	Category *string `json:"category,omitempty"`
}

// TeacherResponse 教师响应
type TeacherResponse struct {
	TeacherID  string  `json:"teacher_id"`
	PersonID   *int64  `json:"person_id,omitempty"`
	NameCN     string  `json:"name_cn"`
	NameEN     string  `json:"name_en"`
	Department *string `json:"department,omitempty"`
}

// DepartmentResponse 开课单位响应
type DepartmentResponse struct {
	DepartmentID string `json:"department_id"`
	Code         string `json:"code"`
	NameCN       string `json:"name_cn"`
	NameEN       string `json:"name_en"`
	IsCollege    bool   `json:"is_college"`
}

// SectionResponse 开课响应
type SectionResponse struct {
	SectionID               string              `json:"section_id"`
	JwID                    *int64              `json:"jw_id,omitempty"`
	Code                    string              `json:"code"`
	Credits                 float64             `json:"credits"`
	Period                  int                 `json:"period"`
	PeriodsPerWeek          int                 `json:"periods_per_week"`
	StdCount                int                 `json:"std_count"`
	LimitCount              int                 `json:"limit_count"`
	GraduateAndPostgraduate bool                `json:"graduate_and_postgraduate"`
	DateTimePlaceText       *string             `json:"date_time_place_text,omitempty"`
	DateTimePlacePersonText json.RawMessage     `json:"date_time_place_person_text,omitempty"`
	Course                  *CourseResponse     `json:"course,omitempty"`
	Semester                *SemesterResponse   `json:"semester,omitempty"`
	OpenDepartment          *DepartmentResponse `json:"open_department,omitempty"`
	Campus                  *string             `json:"campus,omitempty"`
	ExamMode                *string             `json:"exam_mode,omitempty"`
	TeachLanguage           *string             `json:"teach_language,omitempty"`
	Teachers                []TeacherResponse   `json:"teachers"`
	AdminClasses            []string            `json:"admin_classes,omitempty"`
}
