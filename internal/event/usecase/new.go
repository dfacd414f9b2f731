package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"eventsnap/internal/event/repository"
	"eventsnap/internal/model"
	"eventsnap/pkg/datetoken"
	"eventsnap/pkg/gcalendar"
	"eventsnap/pkg/gemini"
	"eventsnap/pkg/ics"
	pkgLog "eventsnap/pkg/log"
	"eventsnap/pkg/share"
)

const defaultCacheSize = 128

type implUseCase struct {
	l          pkgLog.Logger
	llm        gemini.Extractor
	calendar   *gcalendar.Client
	generator  *ics.Generator
	links      *gcalendar.LinkBuilder
	cascade    *share.Cascade
	repo       repository.EventRepository
	tokens     *datetoken.Normalizer
	cache      *lru.Cache[string, model.EventRecord]
	calendarID string
	clock      func() time.Time
}

// New creates a new event UseCase instance. calendar may be nil when Google
// Calendar credentials are not configured; direct insertion then returns
// ErrCalendarNotConfigured while every other operation keeps working.
func New(
	l pkgLog.Logger,
	llm gemini.Extractor,
	calendar *gcalendar.Client,
	generator *ics.Generator,
	links *gcalendar.LinkBuilder,
	cascade *share.Cascade,
	repo repository.EventRepository,
	tokens *datetoken.Normalizer,
	cacheSize int,
	calendarID string,
) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, _ := lru.New[string, model.EventRecord](cacheSize)

	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		generator:  generator,
		links:      links,
		cascade:    cascade,
		repo:       repo,
		tokens:     tokens,
		cache:      cache,
		calendarID: calendarID,
		clock:      time.Now,
	}
}

// SetClock overrides the wall clock (used in tests).
func (uc *implUseCase) SetClock(now func() time.Time) { uc.clock = now }
