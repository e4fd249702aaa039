package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-nlp-service/pkg/gcalendar"
	pkgLog "task-nlp-service/pkg/log"
	"task-nlp-service/pkg/ner"
	"task-nlp-service/pkg/vitime"
)

type implUseCase struct {
	l          pkgLog.Logger
	recognizer ner.Recognizer
	resolver   *vitime.Resolver
	calendar   *gcalendar.Client
	calendarID string

	// entityCache memoizes recognizer calls; the model hop is the only
	// expensive part of a parse and identical texts repeat often.
	entityCache *expirable.LRU[string, ner.Entities]
}

// New creates a new parse UseCase instance. calendar may be nil when
// Google Calendar is not configured; an empty calendarID means the
// account's primary calendar.
func New(
	l pkgLog.Logger,
	recognizer ner.Recognizer,
	resolver *vitime.Resolver,
	calendar *gcalendar.Client,
	calendarID string,
	cacheSize int,
	cacheTTL time.Duration,
) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = 512
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}

	return &implUseCase{
		l:           l,
		recognizer:  recognizer,
		resolver:    resolver,
		calendar:    calendar,
		calendarID:  calendarID,
		entityCache: expirable.NewLRU[string, ner.Entities](cacheSize, nil, cacheTTL),
	}
}
