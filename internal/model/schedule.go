package model

import "time"

// ScheduleGroup 排课分组表 — 对应 schedule_groups
// 一个开课下的选课分组（如实验分组），共享一个容量上限；jw_id 唯一
type ScheduleGroup struct {
	ScheduleGroupID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_group_id"`
	JwID            int64  `gorm:"not null;uniqueIndex"                           json:"jw_id"`
	SectionID       string `gorm:"type:uuid;not null;index"                       json:"section_id"`
	GroupNo         int    `gorm:"column:group_no;not null;default:0"             json:"group_no"`
	LimitCount      *int   `json:"limit_count,omitempty"`
	StdCount        *int   `json:"std_count,omitempty"`
	ActualPeriods   *int   `json:"actual_periods,omitempty"`
	IsDefault       bool   `gorm:"column:is_default;not null;default:false"       json:"is_default"`
	BaseModel

	// 关联
	Section *Section `gorm:"foreignKey:SectionID;references:SectionID" json:"section,omitempty"`
}

// TableName 指定表名
func (ScheduleGroup) TableName() string { return "schedule_groups" }

// Schedule 单次上课记录表 — 对应 schedules
//
// 上游不提供稳定的单次上课标识，因此每轮协调对开课做整体替换
// （事务内先删后插），不做逐行更新；开课当前的排课集合恒等于
// 最近一轮协调的产出。start_time / end_time 为自零点起的分钟数。
type Schedule struct {
	ScheduleID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	SectionID       string  `gorm:"type:uuid;not null;index"                       json:"section_id"`
	ScheduleGroupID *string `gorm:"type:uuid"                                      json:"schedule_group_id,omitempty"`
	RoomID          *string `gorm:"type:uuid"                                      json:"room_id,omitempty"`
	TeacherID       *string `gorm:"type:uuid"                                      json:"teacher_id,omitempty"`

	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	Weekday       int       `gorm:"not null;default:0"       json:"weekday"`
	StartTime     int       `gorm:"not null;default:0"       json:"start_time"` // 分钟
	EndTime       int       `gorm:"not null;default:0"       json:"end_time"`   // 分钟
	Periods       *float64  `json:"periods,omitempty"`
	Experiment    *string   `gorm:"type:text"         json:"experiment,omitempty"`
	CustomPlace   *string   `gorm:"type:varchar(200)" json:"custom_place,omitempty"`
	LessonType    *string   `gorm:"type:varchar(50)"  json:"lesson_type,omitempty"`
	WeekIndex     int       `gorm:"not null;default:0" json:"week_index"`
	ExerciseClass bool      `gorm:"not null;default:false" json:"exercise_class"`
	StartUnit     *int      `json:"start_unit,omitempty"`
	EndUnit       *int      `json:"end_unit,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// 关联
	Section       *Section       `gorm:"foreignKey:SectionID;references:SectionID"             json:"section,omitempty"`
	ScheduleGroup *ScheduleGroup `gorm:"foreignKey:ScheduleGroupID;references:ScheduleGroupID" json:"schedule_group,omitempty"`
	Room          *Room          `gorm:"foreignKey:RoomID;references:RoomID"                   json:"room,omitempty"`
	Teacher       *Teacher       `gorm:"foreignKey:TeacherID;references:TeacherID"             json:"teacher,omitempty"`
}

// TableName 指定表名
func (Schedule) TableName() string { return "schedules" }
