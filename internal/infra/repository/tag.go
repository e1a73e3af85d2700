package repository

import (
	"context"

	"coachbook/internal/domain/tag"
	"coachbook/internal/infra"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type TagWriteQueries interface {
	GetPostByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Posts, error)
	UpsertTag(ctx context.Context, db sqlc.DBTX, name string) (sqlc.Tags, error)
	AttachTagToPost(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachTagToPostParams) (int64, error)
	DetachTagFromPost(ctx context.Context, db sqlc.DBTX, arg sqlc.DetachTagFromPostParams) (int64, error)
	DetachAllTagsFromPost(ctx context.Context, db sqlc.DBTX, postID uuid.UUID) ([]uuid.UUID, error)
	CountPostsForTag(ctx context.Context, db sqlc.DBTX, tagID uuid.UUID) (int64, error)
	DeleteTag(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ListTagsForPost(ctx context.Context, db sqlc.DBTX, postID uuid.UUID) ([]sqlc.Tags, error)
}

type TagRepository struct {
	queries TagWriteQueries
	db      sqlc.DBTX
}

func NewTagRepository(queries TagWriteQueries, db sqlc.DBTX) *TagRepository {
	return &TagRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TagRepository) PostByID(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) (*shared.PostSnapshot, error) {
	row, err := r.queries.GetPostByID(ctx, tx, postID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get post", err)
	}
	return &shared.PostSnapshot{ID: row.ID, CoachID: row.CoachID}, nil
}

func (r *TagRepository) Upsert(ctx context.Context, tx sqlc.DBTX, name string) (tag.Tag, error) {
	row, err := r.queries.UpsertTag(ctx, tx, name)
	if err != nil {
		return tag.Tag{}, infra.WrapRepoErr("failed to upsert tag", err)
	}
	return tag.Tag{ID: row.ID, Name: row.Name}, nil
}

func (r *TagRepository) Attach(ctx context.Context, tx sqlc.DBTX, postID, tagID uuid.UUID) (bool, error) {
	n, err := r.queries.AttachTagToPost(ctx, tx, sqlc.AttachTagToPostParams{PostID: postID, TagID: tagID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach tag", err)
	}
	return n > 0, nil
}

func (r *TagRepository) Detach(ctx context.Context, tx sqlc.DBTX, postID, tagID uuid.UUID) (bool, error) {
	n, err := r.queries.DetachTagFromPost(ctx, tx, sqlc.DetachTagFromPostParams{PostID: postID, TagID: tagID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to detach tag", err)
	}
	return n > 0, nil
}

func (r *TagRepository) DetachAll(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.DetachAllTagsFromPost(ctx, tx, postID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to detach post tags", err)
	}
	return ids, nil
}

func (r *TagRepository) CountPosts(ctx context.Context, tx sqlc.DBTX, tagID uuid.UUID) (int64, error) {
	n, err := r.queries.CountPostsForTag(ctx, tx, tagID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count tag posts", err)
	}
	return n, nil
}

func (r *TagRepository) Delete(ctx context.Context, tx sqlc.DBTX, tagID uuid.UUID) error {
	if _, err := r.queries.DeleteTag(ctx, tx, tagID); err != nil {
		return infra.WrapRepoErr("failed to delete tag", err)
	}
	return nil
}

func (r *TagRepository) ListForPost(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) ([]tag.Tag, error) {
	rows, err := r.queries.ListTagsForPost(ctx, tx, postID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list post tags", err)
	}
	tags := make([]tag.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, tag.Tag{ID: row.ID, Name: row.Name})
	}
	return tags, nil
}
