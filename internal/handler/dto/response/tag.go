package response

import (
	domtag "coachbook/internal/domain/tag"

	"github.com/google/uuid"
)

type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type PostTagsResponse struct {
	PostID uuid.UUID      `json:"postId"`
	Tags   []*TagResponse `json:"tags"`
}

func FromPostTags(postID uuid.UUID, tags []domtag.Tag) *PostTagsResponse {
	res := &PostTagsResponse{PostID: postID, Tags: make([]*TagResponse, 0, len(tags))}
	for _, t := range tags {
		res.Tags = append(res.Tags, &TagResponse{ID: t.ID, Name: t.Name})
	}
	return res
}
