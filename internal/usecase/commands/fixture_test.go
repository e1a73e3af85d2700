//go:build unit

package commands_test

import (
	"context"
	"testing"

	"coachbook/internal/usecase/shared"
	sharedmock "coachbook/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txFixture runs every Within callback against one mocked transaction.
type txFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	slots    *sharedmock.MockAvailabilityRepository
	bookings *sharedmock.MockBookingRepository
	tags     *sharedmock.MockTagRepository
	outbox   *sharedmock.MockOutboxRepository
}

func newTxFixture(t *testing.T) *txFixture {
	ctrl := gomock.NewController(t)
	f := &txFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		slots:    sharedmock.NewMockAvailabilityRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		tags:     sharedmock.NewMockTagRepository(ctrl),
		outbox:   sharedmock.NewMockOutboxRepository(ctrl),
	}
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Availabilities().Return(f.slots).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Tags().Return(f.tags).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	return f
}
