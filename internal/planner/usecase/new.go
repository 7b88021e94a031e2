package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-day-planner/internal/genetic"
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/nlp"
	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/planner/repository"
	"smart-day-planner/pkg/datemath"
	"smart-day-planner/pkg/gcalendar"
	pkgLog "smart-day-planner/pkg/log"
)

// CalendarClient is the calendar dependency. Satisfied by *gcalendar.Client;
// nil means calendar sync is not configured.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, calendarID string, min, max time.Time) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config holds usecase-level settings.
type Config struct {
	Timezone string
	Genetic  genetic.Config
	Weights  genetic.Weights
	CacheTTL time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	parser   *nlp.Parser
	builder  *genetic.Builder
	dm       *datemath.Parser
	calendar CalendarClient
	cfg      Config

	// cache holds recently built schedules keyed by date so repeated reads
	// skip the database.
	cache *expirable.LRU[string, model.Schedule]
}

var _ planner.UseCase = (*implUseCase)(nil)

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *nlp.Parser,
	dm *datemath.Parser,
	calendar CalendarClient,
	cfg Config,
) *implUseCase {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		parser:   parser,
		builder:  genetic.NewBuilder(),
		dm:       dm,
		calendar: calendar,
		cfg:      cfg,
		cache:    expirable.NewLRU[string, model.Schedule](64, nil, ttl),
	}
}
