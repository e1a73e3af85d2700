package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	dombooking "coachbook/internal/domain/booking"
	"coachbook/internal/domain/slotkey"
	"coachbook/internal/infra"
	"coachbook/internal/pkg/clock"
	"coachbook/internal/pkg/errs"
	"coachbook/internal/usecase/shared"
)

// Unique constraint on booking_slots.availability_key.
const bookingSlotConstraint = "booking_slots_availability_key_key"

var (
	ErrBookingNotFound   = errs.Class("booking not found", errs.ErrNotFound)
	ErrDuplicateBooking  = errs.Class("booking already exists", errs.ErrDuplicateKey)
	ErrSlotCoachMismatch = errs.Class("availability does not belong to the booked coach", errs.ErrValidation)
	ErrCalendarMismatch  = errs.Class("booking time matches neither availability", errs.ErrValidation)
)

type CreateBookingRequest struct {
	CoachID       string
	Calendar      slotkey.Calendar
	AvailabilityA string
	AvailabilityB string
	Negotiation   dombooking.Negotiation
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, seekerID string) (*dombooking.Booking, error)
	DeleteBooking(ctx context.Context, key string, actorID string) (*dombooking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger *Ledger
	clock  clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, ledger *Ledger, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, ledger: ledger, clock: clk}
}

// CreateBooking closes both slots and records the booking in one transaction.
// Any failure rolls back, so both slots keep their openness from before the call.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, seekerID string) (*dombooking.Booking, error) {
	b, err := dombooking.New(req.CoachID, seekerID, req.Calendar, req.AvailabilityA, req.AvailabilityB, req.Negotiation, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Lock in key order so two bookings sharing both slots cannot deadlock.
		mirrored := false
		for _, key := range lockOrder(b.SlotKeys()) {
			slot, derr := uc.ledger.Lock(ctx, tx, key)
			if derr != nil {
				return derr
			}
			if slot.CoachID() != b.CoachID() {
				return ErrSlotCoachMismatch
			}
			if slot.Calendar() == b.Calendar() {
				mirrored = true
			}
		}
		if !mirrored {
			return ErrCalendarMismatch
		}

		for _, key := range b.SlotKeys() {
			if derr := uc.ledger.Close(ctx, tx, key, b.Key()); derr != nil {
				return derr
			}
		}

		if derr := tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				if infra.ViolatedConstraint(derr) == bookingSlotConstraint {
					return ErrSlotAlreadyReserved
				}
				return ErrDuplicateBooking
			}
			return derr
		}

		return appendBookingEvent(ctx, tx, shared.EventBookingCreated, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBooking reopens both slots before the booking row goes away, all in
// one transaction. A slot that no longer exists is logged and skipped.
func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, key string, actorID string) (*dombooking.Booking, error) {
	var snapshot *dombooking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByKeyForUpdate(ctx, tx.DB(), key)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		if derr = b.CheckParticipant(actorID); derr != nil {
			return derr
		}

		for _, slotKey := range b.SlotKeys() {
			if derr = uc.ledger.Reopen(ctx, tx, slotKey); derr != nil {
				if errs.Is(derr, ErrSlotNotFound) {
					slog.WarnContext(ctx, "booked availability missing on cancel",
						"booking_key", b.Key(),
						"availability_key", slotKey)
					continue
				}
				return derr
			}
		}

		deleted, derr := tx.Bookings().Delete(ctx, tx.DB(), key)
		if derr != nil {
			return derr
		}
		if !deleted {
			return ErrBookingNotFound
		}

		if derr = appendBookingEvent(ctx, tx, shared.EventBookingDeleted, b); derr != nil {
			return derr
		}
		snapshot = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func lockOrder(keys [2]string) []string {
	ordered := []string{keys[0], keys[1]}
	sort.Strings(ordered)
	return ordered
}

func appendBookingEvent(ctx context.Context, tx shared.Tx, kind string, b *dombooking.Booking) error {
	cal := b.Calendar()
	payload, err := json.Marshal(shared.BookingEventPayload{
		BookingKey: b.Key(),
		CoachID:    b.CoachID(),
		SeekerID:   b.SeekerID(),
		SlotKeys:   b.SlotKeys(),
		Year:       cal.Year,
		Month:      cal.Month,
		Day:        cal.Day,
		Hour:       cal.Hour,
		Minute:     cal.Minute,
		PriceCents: b.PriceCents(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
		Kind:    kind,
		Key:     b.Key(),
		Payload: payload,
	})
}
