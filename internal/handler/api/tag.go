package api

import (
	"net/http"

	reqdto "coachbook/internal/handler/dto/request"
	resdto "coachbook/internal/handler/dto/response"
	"coachbook/internal/handler/httperr"
	"coachbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TagHandler struct {
	cmds commands.TagCommands
}

func NewTagHandler(cmds commands.TagCommands) *TagHandler {
	return &TagHandler{cmds: cmds}
}

// @Summary Attach tags to a post
// @Description Attach every tag of a comma separated string; attaching twice changes nothing
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body reqdto.AttachTagsRequest true "Tag string"
// @Success 200 {object} resdto.PostTagsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/posts/{id}/tags [put]
func (h *TagHandler) Attach(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.AttachTagsRequest
	if !bindJSON(c, &req) {
		return
	}
	tags, err := h.cmds.AttachTags(c.Request.Context(), postID, req.Tags, actorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPostTags(postID, tags))
}

// @Summary Remove a tag from a post
// @Description The tag itself is deleted once no post uses it
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param tagId path string true "Tag ID"
// @Success 200 {object} resdto.PostTagsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/posts/{id}/tags/{tagId} [delete]
func (h *TagHandler) Detach(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	tagID, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tag id", nil)
		return
	}
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	remaining, err := h.cmds.DetachTags(c.Request.Context(), postID, []uuid.UUID{tagID}, actorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPostTags(postID, remaining))
}

// @Summary Remove every tag from a post
// @Tags tags
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/posts/{id}/tags [delete]
func (h *TagHandler) DetachAll(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.cmds.DetachAll(c.Request.Context(), postID, actorID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
