package queries

import (
	"context"

	"coachbook/internal/infra"
	"coachbook/internal/pkg/errs"
)

var ErrAvailabilityNotFound = errs.Class("availability not found", errs.ErrNotFound)

type AvailabilityReadStore interface {
	FindByKey(ctx context.Context, key string) (*AvailabilityView, error)
	FindByCoach(ctx context.Context, coachID string) ([]*AvailabilityView, error)
}

type AvailabilityQueries interface {
	GetByKey(ctx context.Context, key string) (*AvailabilityView, error)
	ListByCoach(ctx context.Context, coachID string) ([]*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	repo AvailabilityReadStore
}

func NewAvailabilityQueries(repo AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) GetByKey(ctx context.Context, key string) (*AvailabilityView, error) {
	v, err := q.repo.FindByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *availabilityQueriesImpl) ListByCoach(ctx context.Context, coachID string) ([]*AvailabilityView, error) {
	return q.repo.FindByCoach(ctx, coachID)
}
