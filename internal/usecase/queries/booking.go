package queries

import (
	"context"

	"coachbook/internal/infra"
	"coachbook/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.Class("booking not found", errs.ErrNotFound)
	ErrBookingAccess   = errs.Class("bookings are visible to their coach and seeker only", errs.ErrForbidden)
)

type BookingReadStore interface {
	FindByKey(ctx context.Context, key string) (*BookingView, error)
	FindByCoach(ctx context.Context, coachID string) ([]*BookingView, error)
	FindBySeeker(ctx context.Context, seekerID string) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByKey(ctx context.Context, key string, actorID string) (*BookingView, error)
	ListByCoach(ctx context.Context, coachID string, actorID string) ([]*BookingView, error)
	ListBySeeker(ctx context.Context, seekerID string, actorID string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByKey(ctx context.Context, key string, actorID string) (*BookingView, error) {
	v, err := q.repo.FindByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if actorID != v.CoachID && actorID != v.SeekerID {
		// Hide existence from outsiders.
		return nil, ErrBookingNotFound
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListByCoach(ctx context.Context, coachID string, actorID string) ([]*BookingView, error) {
	if coachID != actorID {
		return nil, ErrBookingAccess
	}
	return q.repo.FindByCoach(ctx, coachID)
}

func (q *bookingQueriesImpl) ListBySeeker(ctx context.Context, seekerID string, actorID string) ([]*BookingView, error) {
	if seekerID != actorID {
		return nil, ErrBookingAccess
	}
	return q.repo.FindBySeeker(ctx, seekerID)
}
