package sqlite_test

import (
	"context"
	"testing"

	"todome/internal/tag/repository"
	tagSqlite "todome/internal/tag/repository/sqlite"
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
	return tagSqlite.New(db, &mockLogger{})
}

func TestTagStoresLowercasedName(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTag(ctx, repository.CreateTagOptions{
		UserID: "u1",
		Name:   "Urgent",
		Color:  "#ff0000",
	})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if created.Name != "urgent" {
		t.Errorf("name = %q", created.Name)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
}

func TestTagNameLookupCaseInsensitive(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, _ := repo.CreateTag(ctx, repository.CreateTagOptions{UserID: "u1", Name: "urgent"})

	// The commit path of tag resolution looks names up however the user
	// typed them.
	for _, name := range []string{"urgent", "Urgent", "URGENT"} {
		got, err := repo.GetOneTag(ctx, repository.GetOneTagOptions{UserID: "u1", Name: name})
		if err != nil {
			t.Fatalf("GetOneTag(%q): %v", name, err)
		}
		if got.ID != created.ID {
			t.Errorf("lookup %q missed: %+v", name, got)
		}
	}
}

func TestTagNotFoundIsZeroValue(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	got, err := repo.GetOneTag(ctx, repository.GetOneTagOptions{UserID: "u1", Name: "ghost"})
	if err != nil {
		t.Fatalf("GetOneTag: %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero value, got %+v", got)
	}
}

func TestTagUserScoping(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	repo.CreateTag(ctx, repository.CreateTagOptions{UserID: "u1", Name: "urgent"})

	got, err := repo.GetOneTag(ctx, repository.GetOneTagOptions{UserID: "u2", Name: "urgent"})
	if err != nil {
		t.Fatalf("GetOneTag: %v", err)
	}
	if got.ID != "" {
		t.Errorf("u2 should not see u1's tag")
	}
}

func TestTagListByIDs(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"waiting", "errand", "urgent"} {
		created, err := repo.CreateTag(ctx, repository.CreateTagOptions{UserID: "u1", Name: name})
		if err != nil {
			t.Fatalf("CreateTag(%s): %v", name, err)
		}
		ids = append(ids, created.ID)
	}

	all, err := repo.ListTags(ctx, repository.ListTagsOptions{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(all) != 3 || all[0].Name != "errand" || all[2].Name != "waiting" {
		t.Errorf("list order: %+v", all)
	}

	subset, err := repo.ListTags(ctx, repository.ListTagsOptions{UserID: "u1", IDs: ids[:2]})
	if err != nil {
		t.Fatalf("ListTags subset: %v", err)
	}
	if len(subset) != 2 {
		t.Errorf("subset = %d tags", len(subset))
	}
}

func TestTagDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, _ := repo.CreateTag(ctx, repository.CreateTagOptions{UserID: "u1", Name: "urgent"})
	if err := repo.DeleteTag(ctx, "u1", created.ID); err != nil {
		t.Fatalf("DeleteTag: %v", err)
	}

	got, err := repo.GetOneTag(ctx, repository.GetOneTagOptions{UserID: "u1", Name: "urgent"})
	if err != nil {
		t.Fatalf("GetOneTag: %v", err)
	}
	if got.ID != "" {
		t.Errorf("deleted tag still resolvable: %+v", got)
	}
}
