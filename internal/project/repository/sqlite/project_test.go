package sqlite_test

import (
	"context"
	"testing"

	"todome/internal/project/repository"
	projectSqlite "todome/internal/project/repository/sqlite"
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
	return projectSqlite.New(db, &mockLogger{})
}

func TestProjectRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, repository.CreateProjectOptions{
		UserID: "u1",
		Name:   "Reviews",
		Path:   "work/reviews",
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}

	got, err := repo.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", ID: created.ID})
	if err != nil {
		t.Fatalf("GetOneProject: %v", err)
	}
	if got.Name != "Reviews" || got.Path != "work/reviews" {
		t.Errorf("got %+v", got)
	}
}

func TestProjectPathLookupCaseInsensitive(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateProject(ctx, repository.CreateProjectOptions{
		UserID: "u1", Name: "Work", Path: "work",
	}); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	for _, path := range []string{"work", "Work", "WORK"} {
		got, err := repo.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Path: path})
		if err != nil {
			t.Fatalf("GetOneProject(%q): %v", path, err)
		}
		if got.ID == "" {
			t.Errorf("path %q: expected a hit", path)
		}
	}

	// Second lookup of the same path is served by the cache; the result must
	// stay identical.
	first, _ := repo.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Path: "work"})
	second, _ := repo.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Path: "work"})
	if first.ID != second.ID {
		t.Errorf("cache returned a different project: %q vs %q", first.ID, second.ID)
	}
}

func TestProjectNotFoundIsZeroValue(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	got, err := repo.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Path: "ghost"})
	if err != nil {
		t.Fatalf("GetOneProject: %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero value, got %+v", got)
	}
}

func TestProjectUserScoping(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	repo.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", Name: "Work", Path: "work"})

	got, err := repo.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u2", Path: "work"})
	if err != nil {
		t.Fatalf("GetOneProject: %v", err)
	}
	if got.ID != "" {
		t.Errorf("u2 should not see u1's project")
	}
}

func TestProjectDeleteEvictsPath(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, _ := repo.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", Name: "Work", Path: "work"})

	// Warm the cache, then delete.
	repo.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Path: "work"})
	if err := repo.DeleteProject(ctx, "u1", created.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	got, err := repo.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Path: "work"})
	if err != nil {
		t.Fatalf("GetOneProject: %v", err)
	}
	if got.ID != "" {
		t.Errorf("deleted project still resolvable: %+v", got)
	}
}

func TestProjectListOrdering(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, p := range []struct{ name, path string }{
		{"Zeta", "zeta"},
		{"Alpha", "alpha"},
		{"Reviews", "alpha/reviews"},
	} {
		if _, err := repo.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", Name: p.name, Path: p.path}); err != nil {
			t.Fatalf("CreateProject(%s): %v", p.name, err)
		}
	}

	list, err := repo.ListProjects(ctx, repository.ListProjectsOptions{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].Path != "alpha" || list[1].Path != "alpha/reviews" || list[2].Path != "zeta" {
		t.Errorf("order: %s, %s, %s", list[0].Path, list[1].Path, list[2].Path)
	}
}
