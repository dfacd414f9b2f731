package usecase_test

import (
	"context"
	"testing"
	"time"

	"eventsnap/internal/event"
	"eventsnap/internal/event/repository"
	"eventsnap/internal/event/usecase"
	"eventsnap/internal/model"
	"eventsnap/pkg/datetoken"
	"eventsnap/pkg/gcalendar"
	"eventsnap/pkg/ics"
	"eventsnap/pkg/share"
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

type fakeExtractor struct {
	raw   string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractFromImage(ctx context.Context, mimeType, imageBase64 string) (string, error) {
	f.calls++
	return f.raw, f.err
}

func (f *fakeExtractor) Model() string { return "fake-model" }

type fakeRepo struct {
	saved   []model.ExtractedEvent
	saveErr error
	listErr error
}

func (f *fakeRepo) Save(ctx context.Context, ev model.ExtractedEvent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, ev)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.ExtractedEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	end := opt.Offset + opt.Limit
	if opt.Offset >= len(f.saved) {
		return nil, nil
	}
	if end > len(f.saved) {
		end = len(f.saved)
	}
	return f.saved[opt.Offset:end], nil
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) {
	if f.listErr != nil {
		return 0, f.listErr
	}
	return len(f.saved), nil
}

type fakeStrategy struct {
	outcome share.Outcome
	err     error

	payload share.Payload
	calls   int
}

func (f *fakeStrategy) Name() string           { return "fake" }
func (f *fakeStrategy) Outcome() share.Outcome { return f.outcome }
func (f *fakeStrategy) Available() bool        { return true }
func (f *fakeStrategy) Share(ctx context.Context, p share.Payload) error {
	f.calls++
	f.payload = p
	return f.err
}

type ucDeps struct {
	llm      *fakeExtractor
	repo     *fakeRepo
	strategy *fakeStrategy
	calendar *gcalendar.Client
}

var testClock = func() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

// newUseCase wires a UseCase over fakes with a fixed clock of
// 2025-06-15 10:00 UTC.
func newUseCase(t *testing.T, deps ucDeps) event.UseCase {
	t.Helper()

	tokens, err := datetoken.NewNormalizer("UTC")
	if err != nil {
		t.Fatalf("normalizer: %v", err)
	}

	if deps.llm == nil {
		deps.llm = &fakeExtractor{}
	}
	if deps.repo == nil {
		deps.repo = &fakeRepo{}
	}
	if deps.strategy == nil {
		deps.strategy = &fakeStrategy{outcome: share.OutcomeShared}
	}

	uc := usecase.New(
		&mockLogger{},
		deps.llm,
		deps.calendar,
		ics.NewGenerator(tokens),
		gcalendar.NewLinkBuilder(tokens),
		share.NewCascade(deps.strategy),
		deps.repo,
		tokens,
		8,
		"primary",
	)
	uc.SetClock(testClock)

	return uc
}
