package commands

import (
	"context"

	"coachbook/internal/domain/availability"
	"coachbook/internal/domain/slotkey"
	"coachbook/internal/pkg/errs"
	"coachbook/internal/usecase/shared"
)

var ErrSlotNotOwned = errs.Class("availability belongs to another coach", errs.ErrForbidden)

type CreateAvailabilityRequest struct {
	Calendar  slotkey.Calendar
	Recurring bool
}

type AvailabilityCommands interface {
	CreateAvailability(ctx context.Context, req CreateAvailabilityRequest, coachID string) (*availability.Availability, error)
	DeleteAvailability(ctx context.Context, key string, actorID string) (*availability.Availability, error)
}

type availabilityUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger *Ledger
}

func NewAvailabilityCommands(uow shared.UnitOfWork, ledger *Ledger) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow, ledger: ledger}
}

func (uc *availabilityUseCaseImpl) CreateAvailability(ctx context.Context, req CreateAvailabilityRequest, coachID string) (*availability.Availability, error) {
	slot, err := availability.New(coachID, req.Calendar, req.Recurring)
	if err != nil {
		return nil, err
	}

	var created *availability.Availability
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := uc.ledger.Open(ctx, tx, slot)
		if derr != nil {
			return derr
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *availabilityUseCaseImpl) DeleteAvailability(ctx context.Context, key string, actorID string) (*availability.Availability, error) {
	var deleted *availability.Availability
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := uc.ledger.Lock(ctx, tx, key)
		if derr != nil {
			return derr
		}
		if current.CoachID() != actorID {
			return ErrSlotNotOwned
		}
		a, derr := uc.ledger.Remove(ctx, tx, key)
		if derr != nil {
			return derr
		}
		deleted = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
