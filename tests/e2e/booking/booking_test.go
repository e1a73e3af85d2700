//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"coachbook/internal/domain/slotkey"
	"coachbook/internal/handler/dto/response"
	"coachbook/internal/usecase/shared"
	"coachbook/tests/common/builder"
	"coachbook/tests/common/dbtest"
	"coachbook/tests/common/httptest"
	"coachbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availabilitiesURL = "/api/availabilities"
	bookingsURL       = "/api/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

var (
	nine       = slotkey.Calendar{Year: 2024, Month: 1, Day: 10, Hour: 9, Minute: 0}
	nineThirty = slotkey.Calendar{Year: 2024, Month: 1, Day: 10, Hour: 9, Minute: 30}
	ten        = slotkey.Calendar{Year: 2024, Month: 1, Day: 10, Hour: 10, Minute: 0}
)

func (s *BookingSuite) openSlot(coachID string, cal slotkey.Calendar) string {
	t := s.T()
	body := builder.NewAvailabilityBuilder().WithCoach(coachID).WithCalendar(cal).BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilitiesURL, body, s.Auth.GenerateToken(t, coachID))
	var res response.AvailabilityResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res.Key
}

func (s *BookingSuite) book(seekerID string, cal slotkey.Calendar, slotA, slotB string) (int, *response.BookingResponse) {
	t := s.T()
	body := builder.NewBookingBuilder().WithSeeker(seekerID).WithCalendar(cal).WithSlots(slotA, slotB).BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, s.Auth.GenerateToken(t, seekerID))
	if w.Code != http.StatusCreated {
		return w.Code, nil
	}
	var res response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return w.Code, &res
}

// =============================================================================
// Coach C, seekers S and S2 competing for the same two slots
// =============================================================================

func (s *BookingSuite) TestScenario() {
	t := s.T()

	a := s.openSlot("C", nine)
	b := s.openSlot("C", nineThirty)
	require.Equal(t, "C-2024-1-10-9-0", a)
	require.Equal(t, "C-2024-1-10-9-30", b)

	code, booking := s.book("S", nine, a, b)
	require.Equal(t, http.StatusCreated, code)
	expected := &response.BookingResponse{
		Key:        "C-S-2024-1-10-9-0",
		CoachID:    "C",
		SeekerID:   "S",
		Year:       2024,
		Month:      1,
		Day:        10,
		Hour:       9,
		SlotKeys:   []string{a, b},
		PriceCents: 5000,
		Pending:    true,
	}
	opts := cmpopts.IgnoreFields(response.BookingResponse{}, "CreatedAt", "InterviewGoals")
	if diff := cmp.Diff(expected, booking, opts); diff != "" {
		t.Errorf("booking mismatch (-want +got):\n%s", diff)
	}
	require.False(t, dbtest.SlotIsOpen(t, s.DB, a))
	require.False(t, dbtest.SlotIsOpen(t, s.DB, b))

	code, _ = s.book("S2", nine, a, b)
	require.Equal(t, http.StatusConflict, code, "S2 must not get reserved slots")

	w := httptest.PerformRequest(t, s.Router, http.MethodDelete, availabilitiesURL+"/"+a, nil, s.Auth.GenerateToken(t, "C"))
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "reserved")

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+booking.Key, nil, s.Auth.GenerateToken(t, "S"))
	var deleted response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &deleted)
	require.Equal(t, booking.Key, deleted.Key)
	require.True(t, dbtest.SlotIsOpen(t, s.DB, a))
	require.True(t, dbtest.SlotIsOpen(t, s.DB, b))

	code, second := s.book("S2", nine, a, b)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "C-S2-2024-1-10-9-0", second.Key)

	require.Equal(t, 2, dbtest.CountOutboxEvents(t, s.DB, shared.EventBookingCreated))
	require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.EventBookingDeleted))
}

// =============================================================================
// All or nothing
// =============================================================================

func (s *BookingSuite) TestCreateBookingAtomicity() {
	s.Run("one reserved slot leaves the other open", func() {
		t := s.T()
		a := s.openSlot("C", nine)
		b := s.openSlot("C", nineThirty)
		c := s.openSlot("C", ten)

		code, _ := s.book("S", nineThirty, b, c)
		require.Equal(t, http.StatusCreated, code)

		code, _ = s.book("S2", nine, a, b)
		require.Equal(t, http.StatusConflict, code)
		require.True(t, dbtest.SlotIsOpen(t, s.DB, a), "the open slot must keep its openness")
		require.False(t, dbtest.SlotIsOpen(t, s.DB, b))
	})

	s.Run("a missing slot is 404 and nothing closes", func() {
		t := s.T()
		a := s.openSlot("C", nine)

		code, _ := s.book("S", nine, a, "C-2024-1-10-23-0")
		require.Equal(t, http.StatusNotFound, code)
		require.True(t, dbtest.SlotIsOpen(t, s.DB, a))
		require.Equal(t, 0, dbtest.CountOutboxEvents(t, s.DB, shared.EventBookingCreated))
	})

	s.Run("slots of another coach are rejected", func() {
		t := s.T()
		a := s.openSlot("C", nine)
		other := s.openSlot("D", nineThirty)

		code, _ := s.book("S", nine, a, other)
		require.Equal(t, http.StatusBadRequest, code)
		require.True(t, dbtest.SlotIsOpen(t, s.DB, a))
		require.True(t, dbtest.SlotIsOpen(t, s.DB, other))
	})

	s.Run("a time neither slot has is rejected", func() {
		t := s.T()
		a := s.openSlot("C", nine)
		b := s.openSlot("C", nineThirty)

		code, _ := s.book("S", ten, a, b)
		require.Equal(t, http.StatusBadRequest, code)
		require.True(t, dbtest.SlotIsOpen(t, s.DB, a))
		require.True(t, dbtest.SlotIsOpen(t, s.DB, b))
	})
}

// =============================================================================
// Seekers racing for overlapping slots
// =============================================================================

func (s *BookingSuite) TestConcurrentBookings() {
	t := s.T()
	a := s.openSlot("C", nine)
	b := s.openSlot("C", nineThirty)
	c := s.openSlot("C", ten)

	type attempt struct {
		seekerID string
		cal      slotkey.Calendar
		slots    [2]string
		token    string
	}
	const racers = 8
	attempts := make([]attempt, racers)
	for i := range attempts {
		seekerID := fmt.Sprintf("S%d", i)
		at := attempt{seekerID: seekerID, cal: nine, slots: [2]string{a, b}}
		if i%2 == 1 {
			at.cal, at.slots = nineThirty, [2]string{b, c}
		}
		at.token = s.Auth.GenerateToken(t, seekerID)
		attempts[i] = at
	}

	codes := make([]int, racers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, at := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := builder.NewBookingBuilder().WithSeeker(at.seekerID).WithCalendar(at.cal).
				WithSlots(at.slots[0], at.slots[1]).BuildCreateRequestDTO()
			<-start
			codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, at.token).Code
		}()
	}
	close(start)
	wg.Wait()

	created := 0
	for i, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
		default:
			t.Fatalf("racer %d got unexpected status %d", i, code)
		}
	}
	require.Equal(t, 1, created, "exactly one booking may claim the shared slot")
	require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.EventBookingCreated))

	for _, key := range []string{a, b, c} {
		require.Equal(t, !dbtest.SlotIsLinked(t, s.DB, key), dbtest.SlotIsOpen(t, s.DB, key), key)
	}
	require.False(t, dbtest.SlotIsOpen(t, s.DB, b))
}

// =============================================================================
// Availability and booking reads
// =============================================================================

func (s *BookingSuite) TestReads() {
	s.Run("availability reads are public", func() {
		t := s.T()
		a := s.openSlot("C", nine)
		s.openSlot("C", ten)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilitiesURL+"/"+a, nil, "")
		var one response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &one)
		require.True(t, one.IsOpen)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/coaches/C/availabilities", nil, "")
		var list []response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 2)
	})

	s.Run("booking reads are limited to participants", func() {
		t := s.T()
		a := s.openSlot("C", nine)
		b := s.openSlot("C", nineThirty)
		_, booking := s.book("S", nine, a, b)
		require.NotNil(t, booking)

		for _, caller := range []string{"C", "S"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+booking.Key, nil, s.Auth.GenerateToken(t, caller))
			require.Equal(t, http.StatusOK, w.Code, caller)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+booking.Key, nil, s.Auth.GenerateToken(t, "S2"))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/seekers/S/bookings", nil, s.Auth.GenerateToken(t, "S"))
		var mine []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/coaches/C/bookings", nil, s.Auth.GenerateToken(t, "S"))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("expired tokens are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilitiesURL,
			builder.NewAvailabilityBuilder().BuildCreateRequestDTO(), s.Auth.CreateExpiredToken(t, "C"))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// Deleting slots
// =============================================================================

func (s *BookingSuite) TestDeleteAvailability() {
	s.Run("owner deletes an open slot", func() {
		t := s.T()
		a := s.openSlot("C", nine)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, availabilitiesURL+"/"+a, nil, s.Auth.GenerateToken(t, "C"))
		var res response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, a, res.Key)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, availabilitiesURL+"/"+a, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("another coach cannot delete it", func() {
		t := s.T()
		a := s.openSlot("C", nine)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, availabilitiesURL+"/"+a, nil, s.Auth.GenerateToken(t, "D"))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("opening the same slot twice conflicts", func() {
		t := s.T()
		s.openSlot("C", nine)

		body := builder.NewAvailabilityBuilder().WithCalendar(nine).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilitiesURL, body, s.Auth.GenerateToken(t, "C"))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})
}
