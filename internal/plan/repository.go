package plan

import (
	"context"
	"time"
)

// Summary is the listing row for a saved plan.
type Summary struct {
	ID            string
	Name          string
	Theme         string
	ActivityCount int
	UpdatedAt     time.Time
}

// Repository persists weekend plans. Implementations return a nil plan,
// not an error, when nothing matches.
type Repository interface {
	SavePlan(ctx context.Context, p *WeekendPlan) error
	LoadPlan(ctx context.Context, id string) (*WeekendPlan, error)
	LoadLatest(ctx context.Context) (*WeekendPlan, error)
	ListPlans(ctx context.Context) ([]Summary, error)
	DeletePlan(ctx context.Context, id string) error
	Close() error
}
