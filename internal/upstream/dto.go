package upstream

import "encoding/json"

// ── 教务目录（catalog）负载 ──

// SemesterJSON 学期列表条目
type SemesterJSON struct {
	ID     int64  `json:"id"`
	NameZh string `json:"nameZh"`
	Code   string `json:"code"`
	Start  string `json:"start"` // YYYY-MM-DD，可为空
	End    string `json:"end"`
}

// NamePair 中英文名对（参照表字段的通用负载形态）
type NamePair struct {
	Cn string  `json:"cn"`
	En *string `json:"en"`
}

// CourseJSON 开课内嵌的课程信息
type CourseJSON struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Cn   string `json:"cn"`
	En   string `json:"en"`
}

// DepartmentJSON 开课单位负载
type DepartmentJSON struct {
	Code    string `json:"code"`
	Cn      string `json:"cn"`
	En      string `json:"en"`
	College bool   `json:"college"`
}

// TeacherAssignmentJSON 任课教师负载
//
// 目录接口只给 cn/en/departmentCode；教务排课接口
// 的同名列表给 name/teacherId/personId，两处共用一个结构
type TeacherAssignmentJSON struct {
	Cn             string `json:"cn"`
	En             string `json:"en"`
	DepartmentCode string `json:"departmentCode"`

	Name      string `json:"name"`
	TeacherID *int64 `json:"teacherId"`
	PersonID  *int64 `json:"personId"`
}

// LessonJSON 目录接口的开课条目
type LessonJSON struct {
	ID                      int64           `json:"id"`
	Code                    string          `json:"code"`
	Credits                 float64         `json:"credits"`
	Period                  int             `json:"period"`
	PeriodsPerWeek          int             `json:"periodsPerWeek"`
	StdCount                int             `json:"stdCount"`
	LimitCount              int             `json:"limitCount"`
	GraduateAndPostgraduate bool            `json:"graduateAndPostgraduate"`
	DateTimePlaceText       *string         `json:"dateTimePlaceText"`
	DateTimePlacePersonText json.RawMessage `json:"dateTimePlacePersonText"`

	Course          CourseJSON     `json:"course"`
	CourseType      NamePair       `json:"courseType"`
	CourseGradation NamePair       `json:"courseGradation"`
	CourseCategory  NamePair       `json:"courseCategory"`
	CourseClassify  NamePair       `json:"courseClassify"`
	ClassType       NamePair       `json:"classType"`
	Education       NamePair       `json:"education"`
	OpenDepartment  DepartmentJSON `json:"openDepartment"`
	Campus          NamePair       `json:"campus"`
	ExamMode        NamePair       `json:"examMode"`
	TeachLang       NamePair       `json:"teachLang"`

	TeacherAssignmentList []TeacherAssignmentJSON `json:"teacherAssignmentList"`
	AdminClasses          []NamePair              `json:"adminClasses"`
}

// ── 教务系统（jw）排课负载 ──

// CampusJSON 校区负载；早期数据可能缺 id
type CampusJSON struct {
	ID     *int64  `json:"id"`
	NameZh string  `json:"nameZh"`
	NameEn *string `json:"nameEn"`
}

// BuildingJSON 教学楼负载，内嵌校区
type BuildingJSON struct {
	ID     *int64      `json:"id"`
	Code   string      `json:"code"`
	NameZh string      `json:"nameZh"`
	NameEn *string     `json:"nameEn"`
	Campus *CampusJSON `json:"campus"`
}

// RoomTypeJSON 教室类型负载
type RoomTypeJSON struct {
	ID     int64   `json:"id"`
	Code   string  `json:"code"`
	NameZh string  `json:"nameZh"`
	NameEn *string `json:"nameEn"`
}

// RoomJSON 教室负载，内嵌教学楼与教室类型
type RoomJSON struct {
	ID             int64         `json:"id"`
	Code           string        `json:"code"`
	NameZh         string        `json:"nameZh"`
	NameEn         *string       `json:"nameEn"`
	Floor          *int          `json:"floor"`
	Virtual        bool          `json:"virtual"`
	Seats          int           `json:"seats"`
	SeatsForLesson *int          `json:"seatsForLesson"`
	Remark         *string       `json:"remark"`
	Building       *BuildingJSON `json:"building"`
	RoomType       *RoomTypeJSON `json:"roomType"`
}

// DatumLessonJSON 排课负载里的开课条目，仅携带教师指派
type DatumLessonJSON struct {
	ID                    int64                   `json:"id"`
	TeacherAssignmentList []TeacherAssignmentJSON `json:"teacherAssignmentList"`
}

// ScheduleGroupJSON 排课分组负载
type ScheduleGroupJSON struct {
	ID            int64 `json:"id"`
	LessonID      int64 `json:"lessonId"`
	No            int   `json:"no"`
	LimitCount    *int  `json:"limitCount"`
	StdCount      *int  `json:"stdCount"`
	ActualPeriods *int  `json:"actualPeriods"`
	Default       bool  `json:"default"`
}

// ScheduleJSON 单次上课负载；startTime / endTime 为自零点起的分钟数
type ScheduleJSON struct {
	LessonID        int64     `json:"lessonId"`
	ScheduleGroupID *int64    `json:"scheduleGroupId"`
	Room            *RoomJSON `json:"room"`
	TeacherID       *int64    `json:"teacherId"`
	PersonID        *int64    `json:"personId"`
	PersonName      string    `json:"personName"`
	Periods         *float64  `json:"periods"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Weekday         int       `json:"weekday"`
	StartTime       int       `json:"startTime"`
	EndTime         int       `json:"endTime"`
	Experiment      *string   `json:"experiment"`
	CustomPlace     *string   `json:"customPlace"`
	LessonType      *string   `json:"lessonType"`
	WeekIndex       int       `json:"weekIndex"`
	ExerciseClass   bool      `json:"exerciseClass"`
	StartUnit       *int      `json:"startUnit"`
	EndUnit         *int      `json:"endUnit"`
}

// DatumResult 排课接口响应的 result 字段
type DatumResult struct {
	LessonList        []DatumLessonJSON   `json:"lessonList"`
	ScheduleGroupList []ScheduleGroupJSON `json:"scheduleGroupList"`
	ScheduleList      []ScheduleJSON      `json:"scheduleList"`
}
