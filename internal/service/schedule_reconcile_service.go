package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
	"github.com/SiGNAL-Team/server/internal/upstream"
	pkgerrors "github.com/SiGNAL-Team/server/pkg/errors"
)

// ReconcileStats 一批排课协调的结果统计
type ReconcileStats struct {
	Processed int `json:"processed"`
	Missing   int `json:"missing"` // 负载引用但本地不存在的开课数
	Errors    int `json:"errors"`
}

// ScheduleReconcileService 排课协调业务接口
//
// 单次上课没有稳定的上游标识，每个开课的排课在一个事务内
// 整体替换：分组 Upsert、清空旧记录、按负载重建；单个开课
// 失败不影响同批其余开课
type ScheduleReconcileService interface {
	ReconcileDatum(ctx context.Context, datum *upstream.DatumResult) (*ReconcileStats, error)
}

type scheduleReconcileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleReconcileService 创建 ScheduleReconcileService 实例
func NewScheduleReconcileService(repo *repository.Repository, logger *zap.Logger) ScheduleReconcileService {
	return &scheduleReconcileService{repo: repo, logger: logger}
}

func (s *scheduleReconcileService) ReconcileDatum(ctx context.Context, datum *upstream.DatumResult) (*ReconcileStats, error) {
	stats := &ReconcileStats{}

	// 按开课分桶，避免每个开课都扫全量负载
	groupsByLesson := make(map[int64][]upstream.ScheduleGroupJSON)
	for _, g := range datum.ScheduleGroupList {
		groupsByLesson[g.LessonID] = append(groupsByLesson[g.LessonID], g)
	}
	schedulesByLesson := make(map[int64][]upstream.ScheduleJSON)
	for _, sch := range datum.ScheduleList {
		schedulesByLesson[sch.LessonID] = append(schedulesByLesson[sch.LessonID], sch)
	}

	for _, lesson := range datum.LessonList {
		section, err := s.sectionForLesson(ctx, lesson.ID)
		if errors.Is(err, pkgerrors.ErrMissingSection) {
			s.logger.Warn("排课负载引用的开课不存在，请先导入目录", zap.Int64("jw_id", lesson.ID))
			stats.Missing++
			continue
		}
		if err != nil {
			return stats, err
		}

		// 用排课负载里的教师指派补全 person_id / teacher_id
		if err := s.refreshTeacherIdentities(ctx, section, lesson.TeacherAssignmentList); err != nil {
			s.logger.Error("教师身份补全失败", zap.String("section", section.Code), zap.Error(err))
		}

		err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
			return s.replaceSectionSchedules(ctx, tx, section,
				groupsByLesson[lesson.ID], schedulesByLesson[lesson.ID])
		})
		if err != nil {
			stats.Errors++
			s.logger.Error("开课排课替换失败",
				zap.String("section", section.Code),
				zap.Int64("jw_id", lesson.ID),
				zap.Error(err))
			continue
		}
		stats.Processed++
	}

	s.logger.Info("排课协调完成",
		zap.Int("processed", stats.Processed),
		zap.Int("missing", stats.Missing),
		zap.Int("errors", stats.Errors))
	return stats, nil
}

// sectionForLesson 按教务 ID 定位开课；不存在时返回 ErrMissingSection
func (s *scheduleReconcileService) sectionForLesson(ctx context.Context, lessonJwID int64) (*model.Section, error) {
	section, err := s.repo.Section.GetByJwID(ctx, lessonJwID)
	if isNotFound(err) {
		return nil, pkgerrors.ErrMissingSection
	}
	if err != nil {
		return nil, err
	}
	return section, nil
}

// refreshTeacherIdentities 按姓名匹配开课现有教师并回填上游标识
func (s *scheduleReconcileService) refreshTeacherIdentities(ctx context.Context, section *model.Section, assignments []upstream.TeacherAssignmentJSON) error {
	if len(assignments) == 0 {
		return nil
	}
	byName := make(map[string]upstream.TeacherAssignmentJSON, len(assignments))
	for _, a := range assignments {
		if a.Name != "" {
			byName[a.Name] = a
		}
	}
	for i := range section.Teachers {
		teacher := &section.Teachers[i]
		a, ok := byName[teacher.NameCN]
		if !ok {
			continue
		}
		if a.PersonID != nil {
			teacher.PersonID = a.PersonID
		}
		if a.TeacherID != nil {
			teacher.JwTeacherID = a.TeacherID
		}
		if err := s.repo.Teacher.Save(ctx, teacher); err != nil {
			return err
		}
	}
	return nil
}

// replaceSectionSchedules 在事务内整体替换开课的排课
func (s *scheduleReconcileService) replaceSectionSchedules(ctx context.Context, tx *repository.Repository, section *model.Section, groups []upstream.ScheduleGroupJSON, schedules []upstream.ScheduleJSON) error {
	for _, g := range groups {
		group := &model.ScheduleGroup{
			JwID:          g.ID,
			SectionID:     section.SectionID,
			GroupNo:       g.No,
			LimitCount:    g.LimitCount,
			StdCount:      g.StdCount,
			ActualPeriods: g.ActualPeriods,
			IsDefault:     g.Default,
		}
		if err := tx.Schedule.UpsertGroupByJwID(ctx, group); err != nil {
			return err
		}
	}

	if err := tx.Schedule.DeleteBySection(ctx, section.SectionID); err != nil {
		return err
	}

	rows := make([]model.Schedule, 0, len(schedules))
	for i := range schedules {
		row, err := s.buildSchedule(ctx, tx, section, &schedules[i])
		if err != nil {
			return err
		}
		rows = append(rows, *row)
	}
	return tx.Schedule.BatchCreate(ctx, rows)
}

func (s *scheduleReconcileService) buildSchedule(ctx context.Context, tx *repository.Repository, section *model.Section, sch *upstream.ScheduleJSON) (*model.Schedule, error) {
	roomID, err := s.resolveRoom(ctx, tx, sch.Room)
	if err != nil {
		return nil, err
	}
	teacherID, err := s.resolveTeacher(ctx, tx, sch.TeacherID, sch.PersonID, sch.PersonName)
	if err != nil {
		return nil, err
	}

	var groupID *string
	if sch.ScheduleGroupID != nil {
		group, err := tx.Schedule.GetGroupByJwID(ctx, *sch.ScheduleGroupID)
		if isNotFound(err) {
			s.logger.Warn("排课引用的分组不存在",
				zap.Int64("group_jw_id", *sch.ScheduleGroupID),
				zap.String("section", section.Code))
		} else if err != nil {
			return nil, err
		} else {
			groupID = &group.ScheduleGroupID
		}
	}

	date, err := time.Parse("2006-01-02", sch.Date)
	if err != nil {
		return nil, err
	}

	return &model.Schedule{
		SectionID:       section.SectionID,
		ScheduleGroupID: groupID,
		RoomID:          roomID,
		TeacherID:       teacherID,
		Date:            date,
		Weekday:         sch.Weekday,
		StartTime:       sch.StartTime,
		EndTime:         sch.EndTime,
		Periods:         sch.Periods,
		Experiment:      sch.Experiment,
		CustomPlace:     sch.CustomPlace,
		LessonType:      sch.LessonType,
		WeekIndex:       sch.WeekIndex,
		ExerciseClass:   sch.ExerciseClass,
		StartUnit:       sch.StartUnit,
		EndUnit:         sch.EndUnit,
	}, nil
}

// resolveRoom 逐级解析 校区 → 教学楼 → 教室类型 → 教室，全部按 jw_id Upsert
func (s *scheduleReconcileService) resolveRoom(ctx context.Context, tx *repository.Repository, r *upstream.RoomJSON) (*string, error) {
	if r == nil {
		return nil, nil
	}

	var buildingID *string
	if r.Building != nil {
		var campusID *string
		if r.Building.Campus != nil && r.Building.Campus.NameZh != "" {
			campus := &model.Campus{
				JwID:   r.Building.Campus.ID,
				NameCN: r.Building.Campus.NameZh,
				NameEN: r.Building.Campus.NameEn,
			}
			if err := tx.Room.UpsertCampus(ctx, campus); err != nil {
				return nil, err
			}
			campusID = &campus.CampusID
		}
		building := &model.Building{
			JwID:     r.Building.ID,
			Code:     r.Building.Code,
			NameCN:   r.Building.NameZh,
			NameEN:   r.Building.NameEn,
			CampusID: campusID,
		}
		if err := tx.Room.UpsertBuildingByJwID(ctx, building); err != nil {
			return nil, err
		}
		buildingID = &building.BuildingID
	}

	var roomTypeID *string
	if r.RoomType != nil {
		roomType := &model.RoomType{
			JwID:   r.RoomType.ID,
			Code:   r.RoomType.Code,
			NameCN: r.RoomType.NameZh,
			NameEN: r.RoomType.NameEn,
		}
		if err := tx.Room.UpsertRoomTypeByJwID(ctx, roomType); err != nil {
			return nil, err
		}
		roomTypeID = &roomType.RoomTypeID
	}

	roomJwID := r.ID
	room := &model.Room{
		JwID:            &roomJwID,
		Code:            r.Code,
		NameCN:          r.NameZh,
		NameEN:          r.NameEn,
		Floor:           r.Floor,
		Virtual:         r.Virtual,
		Seats:           r.Seats,
		SeatsForSection: r.SeatsForLesson,
		Remark:          r.Remark,
		BuildingID:      buildingID,
		RoomTypeID:      roomTypeID,
	}
	if err := tx.Room.UpsertRoomByJwID(ctx, room); err != nil {
		return nil, err
	}
	return &room.RoomID, nil
}

// resolveTeacher 教师身份归并：person_id 优先，其次复用同名且
// 未绑定 person_id 的记录；负载缺 person_id 时退回任意同名记录
func (s *scheduleReconcileService) resolveTeacher(ctx context.Context, tx *repository.Repository, teacherID, personID *int64, personName string) (*string, error) {
	if personName == "" && personID == nil {
		return nil, nil
	}

	var teacher *model.Teacher
	if personID != nil {
		found, err := tx.Teacher.FindByPersonID(ctx, *personID)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		teacher = found
	}
	if teacher == nil && personName != "" {
		found, err := tx.Teacher.FindByNameNoPersonID(ctx, personName)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		teacher = found
	}
	if teacher == nil && personID == nil && personName != "" {
		found, err := tx.Teacher.FindByName(ctx, personName)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		teacher = found
	}

	if teacher == nil {
		teacher = &model.Teacher{
			NameCN:      personName,
			PersonID:    personID,
			JwTeacherID: teacherID,
		}
		if err := tx.Teacher.Create(ctx, teacher); err != nil {
			return nil, err
		}
		return &teacher.TeacherID, nil
	}

	if personID != nil {
		teacher.PersonID = personID
	}
	if teacherID != nil {
		teacher.JwTeacherID = teacherID
	}
	if personName != "" {
		teacher.NameCN = personName
	}
	if err := tx.Teacher.Save(ctx, teacher); err != nil {
		return nil, err
	}
	return &teacher.TeacherID, nil
}
