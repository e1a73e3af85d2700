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

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Create availability
// @Description Publish an open slot for the calling coach
// @Tags availabilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAvailabilityRequest true "Create availability request"
// @Success 201 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/availabilities [post]
func (h *AvailabilityHandler) Create(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.cmds.CreateAvailability(c.Request.Context(), req.ToCommand(), coachID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByKey(c.Request.Context(), created.Key())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Delete availability
// @Description Delete an open slot owned by the caller and return it
// @Tags availabilities
// @Produce json
// @Security BearerAuth
// @Param key path string true "Availability uniquecheck"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/availabilities/{key} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	deleted, err := h.cmds.DeleteAvailability(c.Request.Context(), c.Param("key"), actorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(deleted))
}

// @Summary Get availability
// @Tags availabilities
// @Produce json
// @Param key path string true "Availability uniquecheck"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/availabilities/{key} [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	view, err := h.q.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List a coach's availabilities
// @Tags availabilities
// @Produce json
// @Param coachId path string true "Coach ID"
// @Success 200 {array} resdto.AvailabilityResponse
// @Router /api/coaches/{coachId}/availabilities [get]
func (h *AvailabilityHandler) ListByCoach(c *gin.Context) {
	views, err := h.q.ListByCoach(c.Request.Context(), c.Param("coachId"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromAvailabilityViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
