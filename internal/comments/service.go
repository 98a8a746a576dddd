package comments

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"board-service/internal/errs"
	"board-service/internal/identity"
	"board-service/internal/posts"
)

type Service interface {
	Create(ctx context.Context, userKey string, postID uuid.UUID, content string, parentID *uuid.UUID) (*Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	ThreadTree(ctx context.Context, postID uuid.UUID) ([]*ThreadNode, error)
}

type service struct {
	repo      Repository
	postsRepo posts.Repository
	ids       *identity.Provider
	scope     string
}

func NewService(repo Repository, postsRepo posts.Repository, ids *identity.Provider, scope string) Service {
	return &service{repo: repo, postsRepo: postsRepo, ids: ids, scope: scope}
}

// Create validates the comment, then refreshes the parent post's comment
// counter by re-counting from storage. Count-then-set stays consistent under
// concurrent commenters; increment-in-place would drift the moment one
// writer failed between insert and update.
func (s *service) Create(ctx context.Context, userKey string, postID uuid.UUID, content string, parentID *uuid.UUID) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errs.Validation("content", "content is empty")
	}

	if _, err := s.postsRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.repo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		// A parent on another post is as good as absent: no cross-post threading.
		if parent.PostID != postID {
			return nil, errs.NotFound("comment", parentID.String())
		}
	}

	c := &Comment{
		ID:          uuid.New(),
		PostID:      postID,
		Content:     content,
		ParentID:    parentID,
		AnonymousID: s.ids.IdentityFor(userKey, s.scope),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.postsRepo.SetCommentCount(ctx, postID, count); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *service) ThreadTree(ctx context.Context, postID uuid.UUID) ([]*ThreadNode, error) {
	list, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return BuildThreadTree(list), nil
}
