//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"coachbook/internal/domain/availability"
	"coachbook/internal/handler/api"
	resdto "coachbook/internal/handler/dto/response"
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

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	handler      *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/availabilities", fakeAuth, s.handler.Create)
	s.router.GET("/availabilities/:key", s.handler.Get)
	s.router.DELETE("/availabilities/:key", fakeAuth, s.handler.Delete)
	s.router.GET("/coaches/:coachId/availabilities", s.handler.ListByCoach)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCreate() {
	url := "/availabilities"

	b := builder.NewAvailabilityBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildStored()
	view := b.BuildView()

	validation := []testCase{
		{name: "hour boundary OK (0)", mutate: testutil.Field("hour", 0), expectCode: http.StatusCreated},
		{name: "hour boundary OK (23)", mutate: testutil.Field("hour", 23), expectCode: http.StatusCreated},
		{name: "hour out of range (24)", mutate: testutil.Field("hour", 24), expectCode: http.StatusBadRequest},
		{name: "minute out of range (60)", mutate: testutil.Field("minute", 60), expectCode: http.StatusBadRequest},
		{name: "month out of range (13)", mutate: testutil.Field("month", 13), expectCode: http.StatusBadRequest},
		{name: "day missing from month (Feb 30)", mutate: func(m map[string]any) { m["month"] = 2; m["day"] = 30 }, expectCode: http.StatusBadRequest},
		{name: "leap day OK", mutate: func(m map[string]any) { m["month"] = 2; m["day"] = 29 }, expectCode: http.StatusCreated},
		{name: "missing field: hour", mutate: testutil.Field("hour", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: year", mutate: testutil.Field("year", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: 201 with the stored slot", func() {
		s.mockCommands.EXPECT().CreateAvailability(gomock.Any(), gomock.Any(), "C").Return(created, nil).Times(1)
		s.mockQueries.EXPECT().GetByKey(gomock.Any(), created.Key()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "C")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("C-2024-1-10-9-0", res.Key)
		s.True(res.IsOpen)
	})

	s.Run("validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateAvailability(gomock.Any(), gomock.Any(), "C").Return(created, nil).Times(1)
					s.mockQueries.EXPECT().GetByKey(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "C")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 409 when the slot already exists", func() {
		s.mockCommands.EXPECT().CreateAvailability(gomock.Any(), gomock.Any(), "C").Return(nil, commands.ErrDuplicateSlot).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "C")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestDelete() {
	b := builder.NewAvailabilityBuilder()
	url := "/availabilities/" + b.Key()

	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "not found", err: commands.ErrSlotNotFound, expectCode: http.StatusNotFound},
		{name: "reserved by a booking", err: availability.ErrSlotReserved, expectCode: http.StatusConflict},
		{name: "owned by another coach", err: commands.ErrSlotNotOwned, expectCode: http.StatusForbidden},
	}

	s.Run("success: returns the deleted slot", func() {
		s.mockCommands.EXPECT().DeleteAvailability(gomock.Any(), b.Key(), "C").Return(b.BuildStored(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "C")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(b.Key(), res.Key)
		s.Equal("C", res.CoachID)
	})

	for _, tt := range tests {
		s.Run("error: "+tt.name, func() {
			s.mockCommands.EXPECT().DeleteAvailability(gomock.Any(), b.Key(), "C").Return(nil, tt.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "C")
			httptest.AssertErrorResponse(s.T(), rec, tt.expectCode, tt.err.Error())
		})
	}
}

// ================================================================================
// TestGet / TestListByCoach
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGet() {
	b := builder.NewAvailabilityBuilder()

	s.Run("success: public read", func() {
		s.mockQueries.EXPECT().GetByKey(gomock.Any(), b.Key()).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availabilities/"+b.Key(), nil, "")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(2024, res.Year)
		s.Equal(9, res.Hour)
	})

	s.Run("error: 404 for unknown key", func() {
		s.mockQueries.EXPECT().GetByKey(gomock.Any(), "nope").Return(nil, queries.ErrAvailabilityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availabilities/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "availability not found")
	})
}

func (s *AvailabilityHandlerTestSuite) TestListByCoach() {
	views := []*queries.AvailabilityView{
		builder.NewAvailabilityBuilder().BuildView(),
		builder.NewAvailabilityBuilder().WithHour(10).Closed("C-S-2024-1-10-9-0").BuildView(),
	}

	s.Run("success: lists open and closed slots", func() {
		s.mockQueries.EXPECT().ListByCoach(gomock.Any(), "C").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coaches/C/availabilities", nil, "")

		var res []resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.True(res[0].IsOpen)
		s.False(res[1].IsOpen)
		s.Require().NotNil(res[1].BookingKey)
		s.Equal("C-S-2024-1-10-9-0", *res[1].BookingKey)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListByCoach(gomock.Any(), "X").Return([]*queries.AvailabilityView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coaches/X/availabilities", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}
