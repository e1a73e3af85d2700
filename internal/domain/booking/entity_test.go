//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"coachbook/internal/domain/booking"
	"coachbook/internal/domain/slotkey"
	"coachbook/internal/pkg/errs"
	"coachbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "C-S-2024-1-10-9-0", actual.Key())
		assert.Equal(t, [2]string{"C-2024-1-10-9-0", "C-2024-1-10-10-0"}, actual.SlotKeys())
		assert.Equal(t, "C", actual.CoachID())
		assert.Equal(t, "S", actual.SeekerID())
		assert.Equal(t, int32(5000), actual.PriceCents())
		assert.True(t, actual.Pending())
		assert.False(t, actual.Confirmed())
		assert.Nil(t, actual.ResumeURL())
		require.NotNil(t, actual.InterviewGoals())
		assert.Equal(t, "Practice system design", *actual.InterviewGoals())
		assert.Equal(t, b.CreatedAt, actual.CreatedAt())
	})

	t.Run("participants", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty coach",
				mutate: func(b *builder.BookingBuilder) { b.WithCoach("  ") },
				errIs:  booking.ErrEmptyCoach,
			},
			{
				name:   "empty seeker",
				mutate: func(b *builder.BookingBuilder) { b.WithSeeker("") },
				errIs:  booking.ErrEmptySeeker,
			},
		})
	})

	t.Run("slots", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing second slot",
				mutate: func(b *builder.BookingBuilder) { b.WithSlots("C-2024-1-10-9-0", "") },
				errIs:  booking.ErrEmptySlotKey,
			},
			{
				name:   "same slot twice",
				mutate: func(b *builder.BookingBuilder) { b.WithSlots("C-2024-1-10-9-0", "C-2024-1-10-9-0") },
				errIs:  booking.ErrSameSlotTwice,
			},
			{
				name: "invalid calendar",
				mutate: func(b *builder.BookingBuilder) {
					b.WithCalendar(slotkey.Calendar{Year: 2024, Month: 2, Day: 30, Hour: 9})
				},
				errIs: slotkey.ErrInvalidCalendar,
			},
		})
	})

	t.Run("negotiation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.BookingBuilder) { b.WithPrice(0) },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.BookingBuilder) { b.WithPrice(-1) },
				errIs:  booking.ErrNegativePrice,
			},
			{
				name:   "https resume",
				mutate: func(b *builder.BookingBuilder) { b.WithResumeURL("https://example.com/cv.pdf") },
			},
			{
				name:   "relative resume",
				mutate: func(b *builder.BookingBuilder) { b.WithResumeURL("cv.pdf") },
				errIs:  booking.ErrInvalidResumeURL,
			},
			{
				name:   "ftp resume",
				mutate: func(b *builder.BookingBuilder) { b.WithResumeURL("ftp://example.com/cv.pdf") },
				errIs:  booking.ErrInvalidResumeURL,
			},
			{
				name: "goals too long",
				mutate: func(b *builder.BookingBuilder) {
					s := strings.Repeat("a", booking.MaxNoteLength+1)
					b.InterviewGoals = &s
				},
				errIs: booking.ErrNoteTooLong,
			},
			{
				name: "multi-byte goals at the limit",
				mutate: func(b *builder.BookingBuilder) {
					s := strings.Repeat("日", booking.MaxNoteLength)
					b.InterviewGoals = &s
				},
			},
			{
				name: "multi-byte questions over the limit",
				mutate: func(b *builder.BookingBuilder) {
					s := strings.Repeat("日", booking.MaxNoteLength+1)
					b.InterviewQuestions = &s
				},
				errIs: booking.ErrNoteTooLong,
			},
		})
	})

	t.Run("blank notes become nil", func(t *testing.T) {
		blank := "   "
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.InterviewGoals = &blank
			b.InterviewQuestions = &blank
		}).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.InterviewGoals())
		assert.Nil(t, actual.InterviewQuestions())
	})

	t.Run("explicit pending flag wins over default", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithPending(false).BuildDomain()
		require.NoError(t, err)
		assert.False(t, actual.Pending())
	})

	t.Run("validation errors carry the validation class", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().WithPrice(-5).BuildDomain()
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestCheckParticipant(t *testing.T) {
	b := builder.NewBookingBuilder().MustBuildDomain()

	assert.NoError(t, b.CheckParticipant("C"))
	assert.NoError(t, b.CheckParticipant("S"))

	err := b.CheckParticipant("S2")
	require.ErrorIs(t, err, booking.ErrNotParticipant)
	assert.True(t, errs.Is(err, errs.ErrForbidden))
	assert.ErrorIs(t, b.CheckParticipant(""), booking.ErrNotParticipant)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.True(t, errs.Is(err, c.errIs))
			}
		})
	}
}
