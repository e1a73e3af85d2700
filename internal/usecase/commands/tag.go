package commands

import (
	"context"
	"log/slog"

	domtag "coachbook/internal/domain/tag"
	"coachbook/internal/infra"
	"coachbook/internal/pkg/errs"
	"coachbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound = errs.Class("post not found", errs.ErrNotFound)
	ErrPostNotOwned = errs.Class("post belongs to another coach", errs.ErrForbidden)
)

type TagCommands interface {
	// AttachTags returns every tag on the post after the attach.
	AttachTags(ctx context.Context, postID uuid.UUID, tagString string, actorID string) ([]domtag.Tag, error)
	// DetachTags returns the tags left on the post.
	DetachTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID, actorID string) ([]domtag.Tag, error)
	DetachAll(ctx context.Context, postID uuid.UUID, actorID string) error
}

type tagUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewTagCommands(uow shared.UnitOfWork) TagCommands {
	return &tagUseCaseImpl{uow: uow}
}

func (uc *tagUseCaseImpl) AttachTags(ctx context.Context, postID uuid.UUID, tagString string, actorID string) ([]domtag.Tag, error) {
	names, err := domtag.ParseTagString(tagString)
	if err != nil {
		return nil, err
	}

	var tags []domtag.Tag
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := checkPostOwner(ctx, tx, postID, actorID); derr != nil {
			return derr
		}
		for _, name := range names {
			t, derr := tx.Tags().Upsert(ctx, tx.DB(), name)
			if derr != nil {
				return derr
			}
			if _, derr = tx.Tags().Attach(ctx, tx.DB(), postID, t.ID); derr != nil {
				return derr
			}
		}
		list, derr := tx.Tags().ListForPost(ctx, tx.DB(), postID)
		if derr != nil {
			return derr
		}
		tags = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (uc *tagUseCaseImpl) DetachTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID, actorID string) ([]domtag.Tag, error) {
	var remaining []domtag.Tag
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := checkPostOwner(ctx, tx, postID, actorID); derr != nil {
			return derr
		}
		for _, id := range tagIDs {
			if _, derr := tx.Tags().Detach(ctx, tx.DB(), postID, id); derr != nil {
				return derr
			}
		}
		if derr := collectOrphans(ctx, tx, tagIDs); derr != nil {
			return derr
		}
		list, derr := tx.Tags().ListForPost(ctx, tx.DB(), postID)
		if derr != nil {
			return derr
		}
		remaining = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return remaining, nil
}

func (uc *tagUseCaseImpl) DetachAll(ctx context.Context, postID uuid.UUID, actorID string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := checkPostOwner(ctx, tx, postID, actorID); derr != nil {
			return derr
		}
		ids, derr := tx.Tags().DetachAll(ctx, tx.DB(), postID)
		if derr != nil {
			return derr
		}
		return collectOrphans(ctx, tx, ids)
	})
}

func checkPostOwner(ctx context.Context, tx shared.Tx, postID uuid.UUID, actorID string) error {
	post, err := tx.Tags().PostByID(ctx, tx.DB(), postID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if post.CoachID != actorID {
		return ErrPostNotOwned
	}
	return nil
}

// collectOrphans deletes each tag that no post references any more. The
// recount is not atomic against a concurrent attach of the same tag.
func collectOrphans(ctx context.Context, tx shared.Tx, tagIDs []uuid.UUID) error {
	for _, id := range tagIDs {
		n, err := tx.Tags().CountPosts(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := tx.Tags().Delete(ctx, tx.DB(), id); err != nil {
			return err
		}
		slog.DebugContext(ctx, "orphan tag deleted", "tag_id", id.String())
	}
	return nil
}
