package sqlite_test

import (
	"context"
	"testing"
	"time"

	"todome/internal/model"
	"todome/internal/task/repository"
	taskSqlite "todome/internal/task/repository/sqlite"
	"todome/pkg/sqlite"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return taskSqlite.New(db, &mockLogger{})
}

func datePtr(y int, m time.Month, d int) *time.Time {
	dt := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &dt
}

func TestTaskRoundTripWithTags(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:     "u1",
		Title:      "Review proposal",
		Priority:   2,
		DueDate:    datePtr(2026, 8, 29),
		DueTime:    "15:00",
		ProjectID:  "proj-1",
		TagIDs:     []string{"tag-a", "tag-b"},
		Recurrence: `{"unit":"day","interval":1}`,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.Status != model.TaskStatusPending {
		t.Errorf("status = %s", created.Status)
	}

	got, err := repo.GetOneTask(ctx, repository.GetOneTaskOptions{UserID: "u1", ID: created.ID})
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.Title != "Review proposal" || got.Priority != 2 || got.DueTime != "15:00" {
		t.Errorf("got %+v", got)
	}
	if got.DueDate == nil || got.DueDate.Format("2006-01-02") != "2026-08-29" {
		t.Errorf("due date = %v", got.DueDate)
	}
	if len(got.TagIDs) != 2 {
		t.Errorf("tag ids = %v", got.TagIDs)
	}
	if got.Recurrence == "" {
		t.Error("recurrence not persisted")
	}
}

func TestTaskUpdateReplacesTags(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID: "u1", Title: "Task", TagIDs: []string{"tag-a"},
	})

	created.Title = "Task v2"
	created.TagIDs = []string{"tag-b", "tag-c"}
	updated, err := repo.UpdateTask(ctx, created)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != "Task v2" {
		t.Errorf("title = %q", updated.Title)
	}

	got, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{UserID: "u1", ID: created.ID})
	if len(got.TagIDs) != 2 {
		t.Fatalf("tag ids = %v", got.TagIDs)
	}
	for _, id := range got.TagIDs {
		if id == "tag-a" {
			t.Error("old tag association survived the update")
		}
	}
}

func TestTaskDeleteAndRestore(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID: "u1", Title: "Task", TagIDs: []string{"tag-a"},
	})

	if err := repo.DeleteTask(ctx, "u1", created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	got, err := repo.GetOneTask(ctx, repository.GetOneTaskOptions{UserID: "u1", ID: created.ID})
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("task still present after delete: %+v", got)
	}

	restored, err := repo.RestoreTask(ctx, created)
	if err != nil {
		t.Fatalf("RestoreTask: %v", err)
	}
	if restored.ID != created.ID || restored.Title != "Task" {
		t.Errorf("restored %+v", restored)
	}
	got, _ = repo.GetOneTask(ctx, repository.GetOneTaskOptions{UserID: "u1", ID: created.ID})
	if got.ID == "" {
		t.Fatal("restore did not re-insert the row")
	}
	if len(got.TagIDs) != 1 || got.TagIDs[0] != "tag-a" {
		t.Errorf("tag ids after restore = %v", got.TagIDs)
	}
}

func TestTaskRestoreOverExisting(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{UserID: "u1", Title: "Before"})

	snapshot := created
	created.Title = "After"
	if _, err := repo.UpdateTask(ctx, created); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	// Restoring the snapshot over the live row reverts the edit.
	if _, err := repo.RestoreTask(ctx, snapshot); err != nil {
		t.Fatalf("RestoreTask: %v", err)
	}
	got, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{UserID: "u1", ID: created.ID})
	if got.Title != "Before" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestTaskListFilters(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	seed := []repository.CreateTaskOptions{
		{UserID: "u1", Title: "Pay rent", Priority: 5, DueDate: datePtr(2026, 9, 1), ProjectID: "proj-home"},
		{UserID: "u1", Title: "Write report", Priority: 3, DueDate: datePtr(2026, 9, 3), ProjectID: "proj-work", TagIDs: []string{"tag-urgent"}},
		{UserID: "u1", Title: "Read book", Priority: 1},
		{UserID: "u2", Title: "Other user task", Priority: 3},
	}
	var ids []string
	for _, opt := range seed {
		created, err := repo.CreateTask(ctx, opt)
		if err != nil {
			t.Fatalf("CreateTask(%s): %v", opt.Title, err)
		}
		ids = append(ids, created.ID)
	}

	// Completing one task to exercise the status filter.
	done, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{UserID: "u1", ID: ids[2]})
	done.Status = model.TaskStatusCompleted
	if _, err := repo.UpdateTask(ctx, done); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	cases := []struct {
		name string
		opt  repository.ListTasksOptions
		want []string
	}{
		{
			name: "all for user",
			opt:  repository.ListTasksOptions{UserID: "u1"},
			want: []string{"Pay rent", "Write report", "Read book"},
		},
		{
			name: "pending only",
			opt:  repository.ListTasksOptions{UserID: "u1", Status: model.TaskStatusPending},
			want: []string{"Pay rent", "Write report"},
		},
		{
			name: "by project",
			opt:  repository.ListTasksOptions{UserID: "u1", ProjectID: "proj-work"},
			want: []string{"Write report"},
		},
		{
			name: "by tag",
			opt:  repository.ListTasksOptions{UserID: "u1", TagID: "tag-urgent"},
			want: []string{"Write report"},
		},
		{
			name: "priority window",
			opt:  repository.ListTasksOptions{UserID: "u1", PriorityMin: 4},
			want: []string{"Pay rent"},
		},
		{
			name: "search",
			opt:  repository.ListTasksOptions{UserID: "u1", Search: "report"},
			want: []string{"Write report"},
		},
		{
			name: "due window",
			opt: repository.ListTasksOptions{
				UserID:  "u1",
				DueFrom: datePtr(2026, 9, 2),
				DueTo:   datePtr(2026, 9, 30),
				DueOnly: true,
			},
			want: []string{"Write report"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tasks, total, err := repo.ListTasks(ctx, tc.opt)
			if err != nil {
				t.Fatalf("ListTasks: %v", err)
			}
			if total != len(tc.want) {
				t.Errorf("total = %d, want %d", total, len(tc.want))
			}
			if len(tasks) != len(tc.want) {
				t.Fatalf("got %d tasks, want %d", len(tasks), len(tc.want))
			}
			for i, title := range tc.want {
				if tasks[i].Title != title {
					t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Title, title)
				}
			}
		})
	}
}

func TestTaskListOrdering(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	// Undated tasks sort after dated ones; among dated, nearest first.
	repo.CreateTask(ctx, repository.CreateTaskOptions{UserID: "u1", Title: "Someday"})
	repo.CreateTask(ctx, repository.CreateTaskOptions{UserID: "u1", Title: "Later", DueDate: datePtr(2026, 9, 10)})
	repo.CreateTask(ctx, repository.CreateTaskOptions{UserID: "u1", Title: "Soon", DueDate: datePtr(2026, 9, 1)})

	tasks, _, err := repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	got := []string{tasks[0].Title, tasks[1].Title, tasks[2].Title}
	want := []string{"Soon", "Later", "Someday"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTaskPagination(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		title := string(rune('a' + i))
		if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{UserID: "u1", Title: title}); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	tasks, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "u1", Offset: 2, Limit: 2})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d", total)
	}
	if len(tasks) != 2 {
		t.Errorf("page size = %d", len(tasks))
	}
}
