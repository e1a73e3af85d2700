package commands

import (
	"context"

	"coachbook/internal/domain/availability"
	"coachbook/internal/infra"
	"coachbook/internal/pkg/errs"
	"coachbook/internal/usecase/shared"
)

var (
	ErrSlotNotFound        = errs.Class("availability not found", errs.ErrNotFound)
	ErrDuplicateSlot       = errs.Class("availability already exists for this coach and time", errs.ErrDuplicateKey)
	ErrSlotAlreadyReserved = errs.Class("availability is already reserved", errs.ErrConflict)
)

// Ledger owns every openness transition of a slot. It never opens its own
// transaction; callers compose its steps inside one UnitOfWork.Within.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Open(ctx context.Context, tx shared.Tx, a *availability.Availability) (*availability.Availability, error) {
	created, err := tx.Availabilities().Create(ctx, tx.DB(), a)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}
	return created, nil
}

// Lock takes the row lock on a slot for the rest of the transaction.
func (l *Ledger) Lock(ctx context.Context, tx shared.Tx, key string) (*availability.Availability, error) {
	a, err := tx.Availabilities().FindByKeyForUpdate(ctx, tx.DB(), key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return a, nil
}

// Close succeeds only on an open slot; a closed one yields ErrSlotAlreadyReserved.
func (l *Ledger) Close(ctx context.Context, tx shared.Tx, key, bookingKey string) error {
	closed, err := tx.Availabilities().Close(ctx, tx.DB(), key, bookingKey)
	if err != nil {
		return err
	}
	if closed {
		return nil
	}
	if _, err := l.Lock(ctx, tx, key); err != nil {
		return err
	}
	return ErrSlotAlreadyReserved
}

func (l *Ledger) Reopen(ctx context.Context, tx shared.Tx, key string) error {
	reopened, err := tx.Availabilities().Reopen(ctx, tx.DB(), key)
	if err != nil {
		return err
	}
	if !reopened {
		return ErrSlotNotFound
	}
	return nil
}

// Remove deletes an open slot and returns what was deleted.
func (l *Ledger) Remove(ctx context.Context, tx shared.Tx, key string) (*availability.Availability, error) {
	deleted, err := tx.Availabilities().DeleteOpen(ctx, tx.DB(), key)
	if err == nil {
		return deleted, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	current, err := l.Lock(ctx, tx, key)
	if err != nil {
		return nil, err
	}
	if err := current.CheckRemovable(); err != nil {
		return nil, err
	}
	// Open but not deleted cannot happen under the row lock.
	return nil, ErrSlotNotFound
}
