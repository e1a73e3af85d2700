//go:build unit

package slotkey_test

import (
	"testing"

	"coachbook/internal/domain/slotkey"
	"coachbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan10 = slotkey.Calendar{Year: 2024, Month: 1, Day: 10, Hour: 9, Minute: 0}

func TestDerive(t *testing.T) {
	t.Run("joins parts in order", func(t *testing.T) {
		assert.Equal(t, "C-2024-1-10-9-0", slotkey.Derive("C", 2024, 1, 10, 9, 0))
		assert.Equal(t, "x", slotkey.Derive("x"))
		assert.Equal(t, "", slotkey.Derive())
	})

	t.Run("deterministic", func(t *testing.T) {
		a := slotkey.Derive("coach", "seeker", 2024, 1, 10, 9, 30)
		b := slotkey.Derive("coach", "seeker", 2024, 1, 10, 9, 30)
		assert.Equal(t, a, b)
	})

	t.Run("separator inside a part cannot shift field boundaries", func(t *testing.T) {
		assert.NotEqual(t, slotkey.Derive("a-b", "c"), slotkey.Derive("a", "b-c"))
		assert.NotEqual(t, slotkey.Derive("a-", "b"), slotkey.Derive("a", "-b"))
		assert.NotEqual(t, slotkey.Derive(`a\`, "b"), slotkey.Derive("a", `\b`))
		assert.NotEqual(t, slotkey.Derive(`a\-b`), slotkey.Derive(`a\`, "b"))
		assert.Equal(t, `a\-b-c`, slotkey.Derive("a-b", "c"))
	})

	t.Run("negative numbers are escaped", func(t *testing.T) {
		assert.NotEqual(t, slotkey.Derive("C", -1, 2), slotkey.Derive("C-", 1, 2))
	})
}

func TestForSlot(t *testing.T) {
	assert.Equal(t, "C-2024-1-10-9-0", slotkey.ForSlot("C", jan10))

	half := jan10
	half.Minute = 30
	assert.Equal(t, "C-2024-1-10-9-30", slotkey.ForSlot("C", half))

	base := slotkey.ForSlot("C", jan10)
	variants := []slotkey.Calendar{
		{Year: 2025, Month: 1, Day: 10, Hour: 9, Minute: 0},
		{Year: 2024, Month: 2, Day: 10, Hour: 9, Minute: 0},
		{Year: 2024, Month: 1, Day: 11, Hour: 9, Minute: 0},
		{Year: 2024, Month: 1, Day: 10, Hour: 10, Minute: 0},
		{Year: 2024, Month: 1, Day: 10, Hour: 9, Minute: 1},
	}
	for _, v := range variants {
		assert.NotEqual(t, base, slotkey.ForSlot("C", v), "calendar %+v", v)
	}
	assert.NotEqual(t, base, slotkey.ForSlot("D", jan10))

	// 1-11 vs 11-1 on the same day position must not collide
	assert.NotEqual(t,
		slotkey.ForSlot("C", slotkey.Calendar{Year: 2024, Month: 1, Day: 11, Hour: 1, Minute: 0}),
		slotkey.ForSlot("C", slotkey.Calendar{Year: 2024, Month: 11, Day: 1, Hour: 1, Minute: 0}))
}

func TestForBooking(t *testing.T) {
	assert.Equal(t, "C-S-2024-1-10-9-0", slotkey.ForBooking("C", "S", jan10))
	assert.NotEqual(t, slotkey.ForBooking("C", "S", jan10), slotkey.ForBooking("S", "C", jan10))
	assert.NotEqual(t, slotkey.ForBooking("a-b", "c", jan10), slotkey.ForBooking("a", "b-c", jan10))
}

func TestCalendar(t *testing.T) {
	testCases := []struct {
		name  string
		cal   slotkey.Calendar
		valid bool
	}{
		{name: "regular", cal: jan10, valid: true},
		{name: "leap day", cal: slotkey.Calendar{Year: 2024, Month: 2, Day: 29, Hour: 0, Minute: 0}, valid: true},
		{name: "end of day", cal: slotkey.Calendar{Year: 2024, Month: 12, Day: 31, Hour: 23, Minute: 59}, valid: true},
		{name: "non leap Feb 29", cal: slotkey.Calendar{Year: 2023, Month: 2, Day: 29}},
		{name: "April 31", cal: slotkey.Calendar{Year: 2024, Month: 4, Day: 31}},
		{name: "month 0", cal: slotkey.Calendar{Year: 2024, Month: 0, Day: 1}},
		{name: "month 13", cal: slotkey.Calendar{Year: 2024, Month: 13, Day: 1}},
		{name: "day 0", cal: slotkey.Calendar{Year: 2024, Month: 1, Day: 0}},
		{name: "hour 24", cal: slotkey.Calendar{Year: 2024, Month: 1, Day: 1, Hour: 24}},
		{name: "negative minute", cal: slotkey.Calendar{Year: 2024, Month: 1, Day: 1, Minute: -1}},
		{name: "minute 60", cal: slotkey.Calendar{Year: 2024, Month: 1, Day: 1, Minute: 60}},
		{name: "year 0", cal: slotkey.Calendar{Year: 0, Month: 1, Day: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := slotkey.NewCalendar(tc.cal.Year, tc.cal.Month, tc.cal.Day, tc.cal.Hour, tc.cal.Minute)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.cal, got)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, slotkey.ErrInvalidCalendar))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}
