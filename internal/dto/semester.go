package dto

// SemesterResponse 学期响应
type SemesterResponse struct {
	SemesterID string  `json:"semester_id"`
	JwID       *int64  `json:"jw_id,omitempty"`
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`
}
