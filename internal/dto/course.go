package dto

// CourseListRequest 课程列表查询参数
type CourseListRequest struct {
	Keyword  string `form:"keyword"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// CourseDetailResponse 课程详情响应，六个参照表取中文名
type CourseDetailResponse struct {
	CourseID       string  `json:"course_id"`
	JwID           *int64  `json:"jw_id,omitempty"`
	Code           string  `json:"code"`
	NameCN         string  `json:"name_cn"`
	NameEN         string  `json:"name_en"`
	Type           *string `json:"type,omitempty"`
	Gradation      *string `json:"gradation,omitempty"`
	Category       *string `json:"category,omitempty"`
	Classify       *string `json:"classify,omitempty"`
	ClassType      *string `json:"class_type,omitempty"`
	EducationLevel *string `json:"education_level,omitempty"`
}

// LookupResponse 参照表条目响应
type LookupResponse struct {
	ID     string  `json:"id"`
	NameCN string  `json:"name_cn"`
	NameEN *string `json:"name_en,omitempty"`
}

// AdminClassResponse 行政班响应
type AdminClassResponse struct {
	AdminClassID string `json:"admin_class_id"`
	NameCN       string `json:"name_cn"`
	NameEN       string `json:"name_en"`
}
