package dto

// ScheduleGroupResponse 排课分组响应
type ScheduleGroupResponse struct {
	ScheduleGroupID string `json:"schedule_group_id"`
	JwID            int64  `json:"jw_id"`
	GroupNo         int    `json:"group_no"`
	LimitCount      *int   `json:"limit_count,omitempty"`
	StdCount        *int   `json:"std_count,omitempty"`
	IsDefault       bool   `json:"is_default"`
}

// ScheduleResponse 单次上课响应；start_time / end_time 为自零点起的分钟数
type ScheduleResponse struct {
	ScheduleID    string   `json:"schedule_id"`
	Date          string   `json:"date"` // YYYY-MM-DD
	Weekday       int      `json:"weekday"`
	StartTime     int      `json:"start_time"`
	EndTime       int      `json:"end_time"`
	WeekIndex     int      `json:"week_index"`
	Periods       *float64 `json:"periods,omitempty"`
	LessonType    *string  `json:"lesson_type,omitempty"`
	Experiment    *string  `json:"experiment,omitempty"`
	CustomPlace   *string  `json:"custom_place,omitempty"`
	ExerciseClass bool     `json:"exercise_class"`
	Room          *string  `json:"room,omitempty"`
	Building      *string  `json:"building,omitempty"`
	Teacher       *string  `json:"teacher,omitempty"`
	GroupNo       *int     `json:"group_no,omitempty"`
}
