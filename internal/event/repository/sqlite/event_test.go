package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"eventsnap/internal/event/repository"
	"eventsnap/internal/event/repository/sqlite"
	"eventsnap/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newTestRepo(t *testing.T) repository.EventRepository {
	t.Helper()

	repo, db, err := sqlite.New(&mockLogger{}, ":memory:")
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return repo
}

func TestEventRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		ev := model.ExtractedEvent{
			ID: uuid.New(),
			Event: model.EventRecord{
				Title:    []string{"Jazz Night", "Book Fair", "Pottery Class"}[i],
				Date:     "2025-01-05",
				Time:     "7:30 PM",
				Location: "Blue Note",
			},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Save(ctx, ev); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}

	events, err := repo.List(ctx, repository.ListOptions{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Event.Title != "Pottery Class" {
		t.Errorf("newest first: got %q", events[0].Event.Title)
	}
	if events[0].Event.Date != "2025-01-05" || events[0].Event.Time != "7:30 PM" {
		t.Errorf("fields not round-tripped: %+v", events[0].Event)
	}

	rest, err := repo.List(ctx, repository.ListOptions{Limit: 10, Offset: 2})
	if err != nil {
		t.Fatalf("list offset: %v", err)
	}
	if len(rest) != 1 || rest[0].Event.Title != "Jazz Night" {
		t.Errorf("offset page wrong: %+v", rest)
	}
}
