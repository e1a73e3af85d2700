//go:build unit

package commands_test

import (
	"context"
	"testing"

	domtag "coachbook/internal/domain/tag"
	"coachbook/internal/infra"
	"coachbook/internal/usecase/commands"
	"coachbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTagCommands_AttachTags(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	owner := &shared.PostSnapshot{ID: postID, CoachID: "C"}

	t.Run("success: names are normalized and attached once", func(t *testing.T) {
		f := newTxFixture(t)
		golang := domtag.Tag{ID: uuid.New(), Name: "golang"}
		sql := domtag.Tag{ID: uuid.New(), Name: "sql"}
		f.tags.EXPECT().PostByID(ctx, nil, postID).Return(owner, nil)
		f.tags.EXPECT().Upsert(ctx, nil, "golang").Return(golang, nil)
		f.tags.EXPECT().Upsert(ctx, nil, "sql").Return(sql, nil)
		f.tags.EXPECT().Attach(ctx, nil, postID, golang.ID).Return(true, nil)
		f.tags.EXPECT().Attach(ctx, nil, postID, sql.ID).Return(false, nil)
		f.tags.EXPECT().ListForPost(ctx, nil, postID).Return([]domtag.Tag{golang, sql}, nil)

		tags, err := commands.NewTagCommands(f.uow).AttachTags(ctx, postID, " GoLang, sql ,golang,, ", "C")

		require.NoError(t, err)
		assert.Equal(t, []domtag.Tag{golang, sql}, tags)
	})

	t.Run("error: blank tag string", func(t *testing.T) {
		f := newTxFixture(t)

		_, err := commands.NewTagCommands(f.uow).AttachTags(ctx, postID, " , ,", "C")

		require.ErrorIs(t, err, domtag.ErrEmptyTagString)
	})

	t.Run("error: post of another coach", func(t *testing.T) {
		f := newTxFixture(t)
		f.tags.EXPECT().PostByID(ctx, nil, postID).Return(owner, nil)

		_, err := commands.NewTagCommands(f.uow).AttachTags(ctx, postID, "golang", "OTHER")

		require.ErrorIs(t, err, commands.ErrPostNotOwned)
	})

	t.Run("error: unknown post", func(t *testing.T) {
		f := newTxFixture(t)
		f.tags.EXPECT().PostByID(ctx, nil, postID).Return(nil, infra.WrapRepoErr("not found", pgx.ErrNoRows))

		_, err := commands.NewTagCommands(f.uow).AttachTags(ctx, postID, "golang", "C")

		require.ErrorIs(t, err, commands.ErrPostNotFound)
	})
}

func TestTagCommands_DetachTags(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	owner := &shared.PostSnapshot{ID: postID, CoachID: "C"}

	t.Run("success: orphaned tag is deleted, shared tag survives", func(t *testing.T) {
		f := newTxFixture(t)
		orphan := uuid.New()
		sharedTag := uuid.New()
		f.tags.EXPECT().PostByID(ctx, nil, postID).Return(owner, nil)
		f.tags.EXPECT().Detach(ctx, nil, postID, orphan).Return(true, nil)
		f.tags.EXPECT().Detach(ctx, nil, postID, sharedTag).Return(true, nil)
		f.tags.EXPECT().CountPosts(ctx, nil, orphan).Return(int64(0), nil)
		f.tags.EXPECT().CountPosts(ctx, nil, sharedTag).Return(int64(2), nil)
		f.tags.EXPECT().Delete(ctx, nil, orphan).Return(nil)
		f.tags.EXPECT().ListForPost(ctx, nil, postID).Return([]domtag.Tag{}, nil)

		remaining, err := commands.NewTagCommands(f.uow).DetachTags(ctx, postID, []uuid.UUID{orphan, sharedTag}, "C")

		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("success: detaching a tag that is not attached is a no-op", func(t *testing.T) {
		f := newTxFixture(t)
		id := uuid.New()
		f.tags.EXPECT().PostByID(ctx, nil, postID).Return(owner, nil)
		f.tags.EXPECT().Detach(ctx, nil, postID, id).Return(false, nil)
		f.tags.EXPECT().CountPosts(ctx, nil, id).Return(int64(1), nil)
		f.tags.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.tags.EXPECT().ListForPost(ctx, nil, postID).Return([]domtag.Tag{}, nil)

		_, err := commands.NewTagCommands(f.uow).DetachTags(ctx, postID, []uuid.UUID{id}, "C")

		require.NoError(t, err)
	})
}

func TestTagCommands_DetachAll(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	a, b := uuid.New(), uuid.New()

	f := newTxFixture(t)
	f.tags.EXPECT().PostByID(ctx, nil, postID).Return(&shared.PostSnapshot{ID: postID, CoachID: "C"}, nil)
	f.tags.EXPECT().DetachAll(ctx, nil, postID).Return([]uuid.UUID{a, b}, nil)
	f.tags.EXPECT().CountPosts(ctx, nil, a).Return(int64(0), nil)
	f.tags.EXPECT().CountPosts(ctx, nil, b).Return(int64(0), nil)
	f.tags.EXPECT().Delete(ctx, nil, a).Return(nil)
	f.tags.EXPECT().Delete(ctx, nil, b).Return(nil)

	require.NoError(t, commands.NewTagCommands(f.uow).DetachAll(ctx, postID, "C"))
}
