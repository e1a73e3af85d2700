package api

import (
	"net/http"

	reqdto "coachbook/internal/handler/dto/request"
	resdto "coachbook/internal/handler/dto/response"
	"coachbook/internal/handler/httperr"
	"coachbook/internal/usecase/commands"
	"coachbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book two open slots of one coach; the caller is the seeker
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	seekerID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand(), seekerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Delete booking
// @Description Cancel a booking; both slots become open again
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Booking uniquecheck"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{key} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	deleted, err := h.cmds.DeleteBooking(c.Request.Context(), c.Param("key"), actorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(deleted))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Booking uniquecheck"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{key} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByKey(c.Request.Context(), c.Param("key"), actorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary List a coach's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param coachId path string true "Coach ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Router /api/coaches/{coachId}/bookings [get]
func (h *BookingHandler) ListByCoach(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	views, err := h.q.ListByCoach(c.Request.Context(), c.Param("coachId"), actorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary List a seeker's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param seekerId path string true "Seeker ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Router /api/seekers/{seekerId}/bookings [get]
func (h *BookingHandler) ListBySeeker(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	views, err := h.q.ListBySeeker(c.Request.Context(), c.Param("seekerId"), actorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondList(c, views)
}

func (h *BookingHandler) respond(c *gin.Context, status int, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func (h *BookingHandler) respondList(c *gin.Context, views []*queries.BookingView) {
	res, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
