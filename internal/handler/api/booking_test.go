//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	dombooking "coachbook/internal/domain/booking"
	"coachbook/internal/handler/api"
	resdto "coachbook/internal/handler/dto/response"
	"coachbook/internal/infra/uow"
	"coachbook/internal/pkg/errs"
	"coachbook/internal/usecase/commands"
	"coachbook/internal/usecase/queries"
	"coachbook/tests/common/builder"
	"coachbook/tests/common/httptest"
	"coachbook/tests/common/testutil"
	commandsmock "coachbook/tests/mock/commands"
	queriesmock "coachbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", fakeAuth, s.handler.Create)
	s.router.GET("/bookings/:key", fakeAuth, s.handler.Get)
	s.router.DELETE("/bookings/:key", fakeAuth, s.handler.Delete)
	s.router.GET("/coaches/:coachId/bookings", fakeAuth, s.handler.ListByCoach)
	s.router.GET("/seekers/:seekerId/bookings", fakeAuth, s.handler.ListBySeeker)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.MustBuildDomain()

	bound := []testCase{
		{name: "price boundary OK (0)", mutate: testutil.Field("priceCents", 0), expectCode: http.StatusCreated},
		{name: "negative price", mutate: testutil.Field("priceCents", -1), expectCode: http.StatusBadRequest},
		{name: "goals length OK (2000 chars)", mutate: testutil.Field("interviewGoals", strings.Repeat("a", 2000)), expectCode: http.StatusCreated},
		{name: "goals too long (2001 chars)", mutate: testutil.Field("interviewGoals", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
		{name: "minute out of range", mutate: testutil.Field("minute", 60), expectCode: http.StatusBadRequest},
	}

	missing := []testCase{
		{name: "missing field: coachId", mutate: testutil.Field("coachId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: availabilityA", mutate: testutil.Field("availabilityA", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: availabilityB", mutate: testutil.Field("availabilityB", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: priceCents", mutate: testutil.Field("priceCents", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: hour", mutate: testutil.Field("hour", nil), expectCode: http.StatusBadRequest},
	}

	shape := []testCase{
		{name: "blank coachId", mutate: testutil.Field("coachId", "   "), expectCode: http.StatusBadRequest},
		{name: "same slot twice", mutate: testutil.Field("availabilityB", b.SlotA), expectCode: http.StatusBadRequest},
	}

	s.Run("success: 201 with both slot keys", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), "S").
			DoAndReturn(func(_ any, req commands.CreateBookingRequest, _ string) (*dombooking.Booking, error) {
				s.Equal("C", req.CoachID)
				s.Equal(b.SlotA, req.AvailabilityA)
				s.Equal(b.SlotB, req.AvailabilityB)
				s.Equal(int32(5000), req.Negotiation.PriceCents)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "S")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal("C-S-2024-1-10-9-0", res.Key)
		s.Equal([]string{"C-2024-1-10-9-0", "C-2024-1-10-10-0"}, res.SlotKeys)
		s.True(res.Pending)
		s.False(res.Confirmed)
	})

	s.Run("validation", func() {
		for _, group := range [][]testCase{bound, missing, shape} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), "S").Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "S")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "slot missing", err: commands.ErrSlotNotFound, expectCode: http.StatusNotFound},
		{name: "slot already reserved", err: commands.ErrSlotAlreadyReserved, expectCode: http.StatusConflict},
		{name: "booking key taken", err: commands.ErrDuplicateBooking, expectCode: http.StatusConflict},
		{name: "slot of another coach", err: commands.ErrSlotCoachMismatch, expectCode: http.StatusBadRequest},
		{name: "time matches neither slot", err: commands.ErrCalendarMismatch, expectCode: http.StatusBadRequest},
		{name: "retries exhausted", err: errs.Mark(uow.ErrMaxRetriesExceeded, errs.ErrTransientStore), expectCode: http.StatusServiceUnavailable},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), "S").Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "S")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestDelete() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.Key()

	s.Run("success: the coach may cancel", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), b.Key(), "C").Return(b.MustBuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "C")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(b.Key(), res.Key)
		s.Equal("S", res.SeekerID)
	})

	s.Run("error: 403 for an outsider", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), b.Key(), "S2").Return(nil, dombooking.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "S2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "neither the coach nor the seeker")
	})

	s.Run("error: 404 for unknown key", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), "nope", "S").Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/nope", nil, "S")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// Reads
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()

	s.Run("success: participant reads the booking", func() {
		s.mockQueries.EXPECT().GetByKey(gomock.Any(), b.Key(), "S").Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.Key(), nil, "S")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("C", res.CoachID)
		s.Require().NotNil(res.InterviewGoals)
	})

	s.Run("error: outsiders see 404", func() {
		s.mockQueries.EXPECT().GetByKey(gomock.Any(), b.Key(), "S2").Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.Key(), nil, "S2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestLists() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("coach lists own bookings", func() {
		s.mockQueries.EXPECT().ListByCoach(gomock.Any(), "C", "C").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coaches/C/bookings", nil, "C")

		var res []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("seeker lists own bookings", func() {
		s.mockQueries.EXPECT().ListBySeeker(gomock.Any(), "S", "S").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/seekers/S/bookings", nil, "S")

		var res []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("someone else's list is forbidden", func() {
		s.mockQueries.EXPECT().ListBySeeker(gomock.Any(), "S", "S2").Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/seekers/S/bookings", nil, "S2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
