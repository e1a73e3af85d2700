//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	domtag "coachbook/internal/domain/tag"
	"coachbook/internal/handler/api"
	resdto "coachbook/internal/handler/dto/response"
	"coachbook/internal/usecase/commands"
	"coachbook/tests/common/httptest"
	commandsmock "coachbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TagHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTagCommands
	handler      *api.TagHandler

	postID uuid.UUID
}

func (s *TagHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTagCommands(s.mockCtrl)
	s.handler = api.NewTagHandler(s.mockCommands)
	s.postID = uuid.New()

	s.router.PUT("/posts/:id/tags", fakeAuth, s.handler.Attach)
	s.router.DELETE("/posts/:id/tags", fakeAuth, s.handler.DetachAll)
	s.router.DELETE("/posts/:id/tags/:tagId", fakeAuth, s.handler.Detach)
}

func (s *TagHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTagHandlerSuite(t *testing.T) {
	suite.Run(t, new(TagHandlerTestSuite))
}

func (s *TagHandlerTestSuite) TestAttach() {
	url := "/posts/" + s.postID.String() + "/tags"
	tags := []domtag.Tag{{ID: uuid.New(), Name: "golang"}, {ID: uuid.New(), Name: "interview"}}

	s.Run("success: returns the post's tags", func() {
		s.mockCommands.EXPECT().AttachTags(gomock.Any(), s.postID, "Golang, interview", "C").Return(tags, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tags": "Golang, interview"}, "C")

		var res resdto.PostTagsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(s.postID, res.PostID)
		s.Require().Len(res.Tags, 2)
		s.Equal("golang", res.Tags[0].Name)
	})

	s.Run("error: 400 for a malformed post id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/posts/not-a-uuid/tags", map[string]any{"tags": "go"}, "C")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 400 when tags is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "C")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when tags is too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tags": strings.Repeat("a", 4097)}, "C")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when only commas are sent", func() {
		s.mockCommands.EXPECT().AttachTags(gomock.Any(), s.postID, " , ", "C").Return(nil, domtag.ErrEmptyTagString).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tags": " , "}, "C")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no tags")
	})

	s.Run("error: 403 on someone else's post", func() {
		s.mockCommands.EXPECT().AttachTags(gomock.Any(), s.postID, "go", "S").Return(nil, commands.ErrPostNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tags": "go"}, "S")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *TagHandlerTestSuite) TestDetach() {
	tagID := uuid.New()
	url := "/posts/" + s.postID.String() + "/tags/" + tagID.String()
	remaining := []domtag.Tag{{ID: uuid.New(), Name: "interview"}}

	s.Run("success: returns remaining tags", func() {
		s.mockCommands.EXPECT().DetachTags(gomock.Any(), s.postID, []uuid.UUID{tagID}, "C").Return(remaining, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "C")

		var res resdto.PostTagsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Tags, 1)
		s.Equal("interview", res.Tags[0].Name)
	})

	s.Run("error: 400 for a malformed tag id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/posts/"+s.postID.String()+"/tags/x", nil, "C")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid tag id")
	})

	s.Run("error: 404 for a missing post", func() {
		s.mockCommands.EXPECT().DetachTags(gomock.Any(), s.postID, []uuid.UUID{tagID}, "C").Return(nil, commands.ErrPostNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "C")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "post not found")
	})
}

func (s *TagHandlerTestSuite) TestDetachAll() {
	url := "/posts/" + s.postID.String() + "/tags"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DetachAll(gomock.Any(), s.postID, "C").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "C")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
