//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"coachbook/internal/infra"
	"coachbook/internal/infra/repository"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/usecase/shared"
	repositorymock "coachbook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Append(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, "booking-events")

	payload := json.RawMessage(`{"bookingKey":"k"}`)
	mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, sqlc.InsertOutboxEventParams{
		Topic:    "booking-events",
		EventKey: "k",
		Kind:     shared.EventBookingCreated,
		Payload:  payload,
	}).Return(nil)

	require.NoError(t, repo.Append(ctx, mockDB, shared.OutboxEvent{
		Kind:    shared.EventBookingCreated,
		Key:     "k",
		Payload: payload,
	}))
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("records cause and attempt ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, "booking-events")

		mockQueries.EXPECT().MarkOutboxEventFailed(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error {
				assert.Equal(t, id, arg.ID)
				assert.Equal(t, "broker down", arg.LastError.String)
				assert.Equal(t, int32(5), arg.MaxAttempts)
				return nil
			})

		require.NoError(t, repo.MarkFailed(ctx, mockDB, id, "broker down", 5))
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, "booking-events")

		mockQueries.EXPECT().MarkOutboxEventSent(ctx, mockDB, id).Return(errors.New("db down"))

		err := repo.MarkSent(ctx, mockDB, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
