package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/upstream"
)

type fakeDatumFetcher struct {
	calls      [][]int64
	failBatch  int // 第 N 次调用返回错误（1 起），0 表示不失败
	datumForID func(ids []int64) *upstream.DatumResult
}

func (f *fakeDatumFetcher) FetchScheduleDatum(_ context.Context, lessonIDs []int64) (*upstream.DatumResult, error) {
	f.calls = append(f.calls, append([]int64(nil), lessonIDs...))
	if f.failBatch == len(f.calls) {
		return nil, errors.New("模拟上游故障")
	}
	if f.datumForID != nil {
		return f.datumForID(lessonIDs), nil
	}
	return &upstream.DatumResult{}, nil
}

func TestPartitionLessonIDs(t *testing.T) {
	ids := make([]int64, 0, 250)
	for i := int64(1); i <= 250; i++ {
		ids = append(ids, i)
	}
	// 掺入重复
	ids = append(ids, 10, 20, 30)

	batches := partitionLessonIDs(ids, 100)
	if len(batches) != 3 {
		t.Fatalf("批次数 = %d, 期望 3", len(batches))
	}
	if len(batches[0]) != 100 || len(batches[1]) != 100 || len(batches[2]) != 50 {
		t.Errorf("批大小 = %d/%d/%d", len(batches[0]), len(batches[1]), len(batches[2]))
	}
	// 降序且无重复
	if batches[0][0] != 250 || batches[2][49] != 1 {
		t.Errorf("排序错误: 首 %d 尾 %d", batches[0][0], batches[2][49])
	}
	seen := make(map[int64]bool)
	for _, b := range batches {
		for _, id := range b {
			if seen[id] {
				t.Fatalf("重复 ID %d", id)
			}
			seen[id] = true
		}
	}
}

func TestPartitionLessonIDs_Empty(t *testing.T) {
	if batches := partitionLessonIDs(nil, 100); batches != nil {
		t.Errorf("空输入批次 = %v", batches)
	}
}

func seedSemesterSections(t *testing.T, m *mockRepos, n int) *model.Semester {
	t.Helper()
	jwID := int64(401)
	semester := &model.Semester{JwID: &jwID, Name: "2024年秋季学期", Code: "2024FA"}
	if _, err := m.repo.Semester.UpsertByJwID(context.Background(), semester); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		lessonID := int64(100000 + i)
		section := &model.Section{
			JwID:       &lessonID,
			Code:       fmt.Sprintf("TEST%04d.01", i),
			CourseID:   "course-1",
			SemesterID: &semester.SemesterID,
		}
		if err := m.repo.Section.UpsertByJwID(context.Background(), section); err != nil {
			t.Fatal(err)
		}
	}
	return semester
}

func TestScheduleSync_Batching(t *testing.T) {
	m := newMockRepos()
	semester := seedSemesterSections(t, m, 250)

	fetcher := &fakeDatumFetcher{}
	reconcile := NewScheduleReconcileService(m.repo, zap.NewNop())
	svc := NewScheduleSyncService(m.repo, fetcher, reconcile, 100, zap.NewNop())

	stats, err := svc.SyncSemester(context.Background(), semester)
	if err != nil {
		t.Fatalf("SyncSemester: %v", err)
	}
	if stats.Sections != 250 || stats.Batches != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if len(fetcher.calls) != 3 {
		t.Fatalf("上游调用次数 = %d, 期望 3", len(fetcher.calls))
	}
	// 批内按教务 ID 降序
	if fetcher.calls[0][0] != 100249 {
		t.Errorf("首批首个 ID = %d, 期望 100249", fetcher.calls[0][0])
	}
}

// 某批上游失败，其余批照常处理
func TestScheduleSync_BatchFailureIsolation(t *testing.T) {
	m := newMockRepos()
	semester := seedSemesterSections(t, m, 250)

	fetcher := &fakeDatumFetcher{
		failBatch: 2,
		datumForID: func(ids []int64) *upstream.DatumResult {
			datum := &upstream.DatumResult{}
			for _, id := range ids {
				datum.LessonList = append(datum.LessonList, upstream.DatumLessonJSON{ID: id})
			}
			return datum
		},
	}
	reconcile := NewScheduleReconcileService(m.repo, zap.NewNop())
	svc := NewScheduleSyncService(m.repo, fetcher, reconcile, 100, zap.NewNop())

	stats, err := svc.SyncSemester(context.Background(), semester)
	if err != nil {
		t.Fatalf("批次失败不应中断同步: %v", err)
	}
	if stats.FailedBatch != 1 {
		t.Errorf("失败批次 = %d, 期望 1", stats.FailedBatch)
	}
	if stats.Processed != 150 {
		t.Errorf("processed = %d, 期望其余两批共 150", stats.Processed)
	}
	if len(fetcher.calls) != 3 {
		t.Errorf("上游调用次数 = %d, 第二批失败后仍应请求第三批", len(fetcher.calls))
	}
}

func TestScheduleSync_NoSections(t *testing.T) {
	m := newMockRepos()
	jwID := int64(401)
	semester := &model.Semester{JwID: &jwID, Code: "2024FA"}
	if _, err := m.repo.Semester.UpsertByJwID(context.Background(), semester); err != nil {
		t.Fatal(err)
	}

	svc := NewScheduleSyncService(m.repo, &fakeDatumFetcher{}, NewScheduleReconcileService(m.repo, zap.NewNop()), 100, zap.NewNop())
	if _, err := svc.SyncSemester(context.Background(), semester); !errors.Is(err, ErrNoSections) {
		t.Fatalf("err = %v, 期望 ErrNoSections", err)
	}
}
