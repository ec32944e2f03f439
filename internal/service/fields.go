package service

import (
	"fmt"
	"strings"

	"github.com/SiGNAL-Team/server/internal/model"
)

// SectionFieldFunc 从开课记录取某一列展示值
type SectionFieldFunc func(*model.Section) string

// sectionFields 以双下划线路径为键的取值函数表，
// 供导出等场景按列名动态取字段，未注册的路径取空串
var sectionFields = map[string]SectionFieldFunc{
	"code":    func(s *model.Section) string { return s.Code },
	"credits": func(s *model.Section) string { return trimFloat(s.Credits) },
	"period":  func(s *model.Section) string { return fmt.Sprintf("%d", s.Period) },
	"periods_per_week": func(s *model.Section) string {
		return fmt.Sprintf("%d", s.PeriodsPerWeek)
	},
	"std_count":   func(s *model.Section) string { return fmt.Sprintf("%d", s.StdCount) },
	"limit_count": func(s *model.Section) string { return fmt.Sprintf("%d", s.LimitCount) },
	"course__code": func(s *model.Section) string {
		if s.Course == nil {
			return ""
		}
		return s.Course.Code
	},
	"course__name_cn": func(s *model.Section) string {
		if s.Course == nil {
			return ""
		}
		return s.Course.NameCN
	},
	"course__name_en": func(s *model.Section) string {
		if s.Course == nil {
			return ""
		}
		return s.Course.NameEN
	},
	"open_department__name_cn": func(s *model.Section) string {
		if s.OpenDepartment == nil {
			return ""
		}
		return s.OpenDepartment.NameCN
	},
	"open_department__code": func(s *model.Section) string {
		if s.OpenDepartment == nil {
			return ""
		}
		return s.OpenDepartment.Code
	},
	"campus__name_cn": func(s *model.Section) string {
		if s.Campus == nil {
			return ""
		}
		return s.Campus.NameCN
	},
	"exam_mode__name_cn": func(s *model.Section) string {
		if s.ExamMode == nil {
			return ""
		}
		return s.ExamMode.NameCN
	},
	"teach_language__name_cn": func(s *model.Section) string {
		if s.TeachLanguage == nil {
			return ""
		}
		return s.TeachLanguage.NameCN
	},
	"teachers": func(s *model.Section) string {
		names := make([]string, 0, len(s.Teachers))
		for i := range s.Teachers {
			names = append(names, s.Teachers[i].NameCN)
		}
		return strings.Join(names, "、")
	},
	"admin_classes": func(s *model.Section) string {
		names := make([]string, 0, len(s.AdminClasses))
		for _, c := range s.AdminClasses {
			names = append(names, c.NameCN)
		}
		return strings.Join(names, "、")
	},
	"date_time_place_text": func(s *model.Section) string {
		if s.DateTimePlaceText == nil {
			return ""
		}
		return *s.DateTimePlaceText
	},
}

// RegisterSectionField 注册（或覆盖）一个取值函数
func RegisterSectionField(path string, fn SectionFieldFunc) {
	sectionFields[path] = fn
}

// SectionFieldValue 按路径取开课字段值，未注册的路径返回空串
func SectionFieldValue(section *model.Section, path string) string {
	fn, ok := sectionFields[path]
	if !ok {
		return ""
	}
	return fn(section)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
