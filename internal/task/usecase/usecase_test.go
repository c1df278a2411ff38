package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"todome/internal/model"
	"todome/internal/project"
	"todome/internal/tag"
	"todome/internal/task"
	"todome/internal/task/repository"
	"todome/internal/task/undo"
	"todome/internal/task/usecase"
	"todome/pkg/datemath"
)

// mock dependencies

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

// mockRepository is an in-memory task store.
type mockRepository struct {
	tasks  map[string]model.Task
	nextID int
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: map[string]model.Task{}}
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.nextID++
	t := model.Task{
		ID:          "task-" + string(rune('0'+m.nextID)),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      model.TaskStatusPending,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		DueTime:     opt.DueTime,
		ProjectID:   opt.ProjectID,
		TagIDs:      opt.TagIDs,
		Recurrence:  opt.Recurrence,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	t := m.tasks[opt.ID]
	if t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.DueOnly && t.DueDate == nil {
			continue
		}
		if opt.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*opt.DueFrom)) {
			continue
		}
		if opt.DueTo != nil && (t.DueDate == nil || t.DueDate.After(*opt.DueTo)) {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, userID, id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockRepository) RestoreTask(ctx context.Context, t model.Task) (model.Task, error) {
	m.tasks[t.ID] = t
	return t, nil
}

// mockProjects implements project.UseCase over a fixed path map.
type mockProjects struct {
	byPath map[string]model.Project
}

func (m *mockProjects) Create(ctx context.Context, sc model.Scope, input project.CreateProjectInput) (model.Project, error) {
	return model.Project{}, nil
}

func (m *mockProjects) List(ctx context.Context, sc model.Scope) ([]model.Project, error) {
	return nil, nil
}

func (m *mockProjects) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	for _, p := range m.byPath {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Project{}, project.ErrNotFound
}

func (m *mockProjects) Delete(ctx context.Context, sc model.Scope, id string) error { return nil }

func (m *mockProjects) Resolve(ctx context.Context, sc model.Scope, path string) (*model.ProjectRef, error) {
	p, ok := m.byPath[strings.ToLower(path)]
	if !ok {
		return nil, nil
	}
	return &model.ProjectRef{ID: p.ID, Name: p.Name}, nil
}

// mockTags implements tag.UseCase, creating tags on commit-mode resolution.
type mockTags struct {
	known   map[string]model.Tag
	created []string
}

func (m *mockTags) Create(ctx context.Context, sc model.Scope, input tag.CreateTagInput) (model.Tag, error) {
	return model.Tag{}, nil
}

func (m *mockTags) List(ctx context.Context, sc model.Scope) ([]model.Tag, error) { return nil, nil }

func (m *mockTags) Delete(ctx context.Context, sc model.Scope, id string) error { return nil }

func (m *mockTags) Resolve(ctx context.Context, sc model.Scope, name string, preview bool) (*model.TagRef, bool, error) {
	lower := strings.ToLower(name)
	if t, ok := m.known[lower]; ok {
		return &model.TagRef{ID: t.ID, Name: t.Name}, false, nil
	}
	if preview {
		return nil, false, nil
	}
	t := model.Tag{ID: "tag-" + lower, Name: lower}
	m.known[lower] = t
	m.created = append(m.created, lower)
	return &model.TagRef{ID: t.ID, Name: t.Name}, true, nil
}

// Friday, August 28, 2026, 10:00 UTC
var baseTime = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc       task.UseCase
	repo     *mockRepository
	projects *mockProjects
	tags     *mockTags
	sc       model.Scope
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cal, err := datemath.New("UTC")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	repo := newMockRepository()
	projects := &mockProjects{byPath: map[string]model.Project{
		"work": {ID: "proj-1", UserID: "u1", Name: "Work", Path: "work"},
	}}
	tags := &mockTags{known: map[string]model.Tag{
		"urgent": {ID: "tag-urgent", Name: "urgent"},
	}}
	uc := usecase.New(repo, projects, tags, undo.NewStore(time.Minute), cal, &mockLogger{}).
		WithClock(func() time.Time { return baseTime })
	return &fixture{uc: uc, repo: repo, projects: projects, tags: tags, sc: model.Scope{UserID: "u1"}}
}

func TestCreateFromNaturalLanguage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, f.sc, task.CreateTaskInput{
		Input:                "Review proposal tomorrow at 3pm #work @urgent @newtag p2",
		ParseNaturalLanguage: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if out.Task.Title != "Review proposal" {
		t.Errorf("title = %q", out.Task.Title)
	}
	if out.Task.DueDate == nil || out.Task.DueDate.Format("2006-01-02") != "2026-08-29" {
		t.Errorf("due date = %v", out.Task.DueDate)
	}
	if out.Task.DueTime != "15:00" {
		t.Errorf("due time = %q", out.Task.DueTime)
	}
	if out.Task.ProjectID != "proj-1" {
		t.Errorf("project = %q", out.Task.ProjectID)
	}
	if len(out.Task.TagIDs) != 2 {
		t.Errorf("tag ids = %v", out.Task.TagIDs)
	}
	if out.Task.Priority != 2 {
		t.Errorf("priority = %d", out.Task.Priority)
	}
	if len(f.tags.created) != 1 || f.tags.created[0] != "newtag" {
		t.Errorf("created tags = %v", f.tags.created)
	}
	if out.Parse == nil || len(out.Parse.Highlights) == 0 {
		t.Error("expected the parse result to be attached")
	}
}

func TestCreateExplicitValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "  "}); err != task.ErrEmptyTitle {
		t.Errorf("empty title: got %v", err)
	}
	if _, err := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "x", Priority: 9}); err != task.ErrInvalidPriority {
		t.Errorf("bad priority: got %v", err)
	}
	if _, err := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "x", ProjectID: "ghost"}); err != task.ErrProjectMissing {
		t.Errorf("missing project: got %v", err)
	}

	out, err := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "x"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task.Priority != model.TaskPriorityDefault {
		t.Errorf("default priority = %d", out.Task.Priority)
	}
}

func TestCompleteRecurringRollsForward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, f.sc, task.CreateTaskInput{
		Input:                "Water plants every 3 days",
		ParseNaturalLanguage: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	due := baseTime.AddDate(0, 0, 2)
	tsk := out.Task
	tsk.DueDate = &due
	if _, err := f.repo.UpdateTask(ctx, tsk); err != nil {
		t.Fatalf("seed due date: %v", err)
	}

	st, err := f.uc.ChangeStatus(ctx, f.sc, tsk.ID, model.TaskStatusCompleted)
	if err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	if !st.RolledOver {
		t.Fatal("expected rollover")
	}
	if st.Task.Status != model.TaskStatusPending {
		t.Errorf("status = %q", st.Task.Status)
	}
	// Absolute kind: 3 days from the scheduled due date, not from today.
	want := due.AddDate(0, 0, 3).Format("2006-01-02")
	if st.Task.DueDate == nil || st.Task.DueDate.Format("2006-01-02") != want {
		t.Errorf("due date = %v, want %s", st.Task.DueDate, want)
	}
}

func TestCompleteRelativeRecurrenceFromCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, f.sc, task.CreateTaskInput{
		Input:                "Change filter every 2 weeks from completion",
		ParseNaturalLanguage: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	due := baseTime.AddDate(0, 0, -10)
	tsk := out.Task
	tsk.DueDate = &due
	f.repo.UpdateTask(ctx, tsk)

	st, err := f.uc.ChangeStatus(ctx, f.sc, tsk.ID, model.TaskStatusCompleted)
	if err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	// Relative kind: anchored on the completion time, ignoring the old due.
	want := baseTime.AddDate(0, 0, 14).Format("2006-01-02")
	if st.Task.DueDate == nil || st.Task.DueDate.Format("2006-01-02") != want {
		t.Errorf("due date = %v, want %s", st.Task.DueDate, want)
	}
}

func TestCompleteNonRecurring(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, _ := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "One-off"})
	st, err := f.uc.ChangeStatus(ctx, f.sc, out.Task.ID, model.TaskStatusCompleted)
	if err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	if st.RolledOver {
		t.Error("one-off task should not roll over")
	}
	if st.Task.Status != model.TaskStatusCompleted || st.Task.CompletedAt == nil {
		t.Errorf("task = %+v", st.Task)
	}
}

func TestDeleteUndoRestores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, _ := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "Keep me"})
	del, err := f.uc.Delete(ctx, f.sc, out.Task.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.uc.Detail(ctx, f.sc, out.Task.ID); err != task.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	restored, err := f.uc.Undo(ctx, f.sc, del.UndoToken)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if restored.ID != out.Task.ID || restored.Title != "Keep me" {
		t.Errorf("restored = %+v", restored)
	}

	if _, err := f.uc.Undo(ctx, f.sc, del.UndoToken); err != task.ErrUndoExpired {
		t.Errorf("second undo: got %v", err)
	}
}

func TestUpdateUndoRestoresSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, _ := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "Original"})
	newTitle := "Changed"
	upd, err := f.uc.Update(ctx, f.sc, task.UpdateTaskInput{ID: out.Task.ID, Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Task.Title != "Changed" {
		t.Errorf("title = %q", upd.Task.Title)
	}

	restored, err := f.uc.Undo(ctx, f.sc, upd.UndoToken)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if restored.Title != "Original" {
		t.Errorf("restored title = %q", restored.Title)
	}
}

func TestDateWindows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seed := func(title string, daysFromNow int) {
		due := baseTime.AddDate(0, 0, daysFromNow)
		f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: title, DueDate: &due})
	}
	seed("yesterday", -1)
	seed("today", 0)
	seed("in three days", 3)
	seed("far out", 30)
	f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "undated"})

	today, err := f.uc.Today(ctx, f.sc)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if len(today) != 1 || today[0].Title != "today" {
		t.Errorf("today = %v", titles(today))
	}

	upcoming, err := f.uc.Upcoming(ctx, f.sc, 7)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Title != "in three days" {
		t.Errorf("upcoming = %v", titles(upcoming))
	}

	overdue, err := f.uc.Overdue(ctx, f.sc)
	if err != nil {
		t.Fatalf("Overdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].Title != "yesterday" {
		t.Errorf("overdue = %v", titles(overdue))
	}
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestBatchComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plain, _ := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "One-off"})
	due := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	recurring, _ := f.uc.Create(ctx, f.sc, task.CreateTaskInput{
		Title:      "Water plants",
		DueDate:    &due,
		Recurrence: `{"kind":"absolute","interval":"day","count":3}`,
	})

	out, err := f.uc.BatchComplete(ctx, f.sc, task.BatchTasksInput{
		IDs: []string{plain.Task.ID, "ghost", recurring.Task.ID},
	})
	if err != nil {
		t.Fatalf("BatchComplete: %v", err)
	}

	if len(out.Results) != 2 {
		t.Fatalf("results = %d", len(out.Results))
	}
	if len(out.Failed) != 1 || out.Failed[0] != "ghost" {
		t.Errorf("failed = %v", out.Failed)
	}

	if out.Results[0].Task.Status != model.TaskStatusCompleted {
		t.Errorf("one-off status = %s", out.Results[0].Task.Status)
	}
	// The recurring task rolls forward inside the batch too.
	if !out.Results[1].RolledOver {
		t.Error("recurring task did not roll over")
	}
	if out.Results[1].Task.Status != model.TaskStatusPending {
		t.Errorf("recurring status = %s", out.Results[1].Task.Status)
	}
	if out.Results[1].Task.DueDate.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("rolled due = %v", out.Results[1].Task.DueDate)
	}
	for i, r := range out.Results {
		if r.UndoToken == "" {
			t.Errorf("results[%d] has no undo token", i)
		}
	}
}

func TestBatchDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, _ := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "First"})
	b, _ := f.uc.Create(ctx, f.sc, task.CreateTaskInput{Title: "Second"})

	out, err := f.uc.BatchDelete(ctx, f.sc, task.BatchTasksInput{
		IDs: []string{a.Task.ID, "ghost", b.Task.ID},
	})
	if err != nil {
		t.Fatalf("BatchDelete: %v", err)
	}

	if len(out.Deleted) != 2 || len(out.UndoTokens) != 2 {
		t.Fatalf("deleted = %v, tokens = %d", out.Deleted, len(out.UndoTokens))
	}
	if len(out.Failed) != 1 || out.Failed[0] != "ghost" {
		t.Errorf("failed = %v", out.Failed)
	}
	for _, id := range []string{a.Task.ID, b.Task.ID} {
		if _, err := f.uc.Detail(ctx, f.sc, id); err != task.ErrNotFound {
			t.Errorf("task %s still present: %v", id, err)
		}
	}

	// Each token restores its own task.
	restored, err := f.uc.Undo(ctx, f.sc, out.UndoTokens[0])
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if restored.Title != "First" {
		t.Errorf("restored = %q", restored.Title)
	}
}
