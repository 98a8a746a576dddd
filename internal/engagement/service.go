package engagement

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"board-service/internal/errs"
	"board-service/internal/identity"
	"board-service/pkg/kafka"
)

type Service interface {
	// React applies one like/dislike transition for the calling viewer
	// against the stored state and returns the reconciled result.
	React(ctx context.Context, userKey string, postID uuid.UUID, action Action) (State, error)
	// ViewerState exposes the stored state, used to seed client sessions.
	ViewerState(ctx context.Context, userKey string, postID uuid.UUID) (State, error)
}

type service struct {
	store    Store
	ids      *identity.Provider
	scope    string
	producer *kafka.Producer
}

func NewService(store Store, ids *identity.Provider, scope string, producer *kafka.Producer) Service {
	return &service{store: store, ids: ids, scope: scope, producer: producer}
}

func (s *service) React(ctx context.Context, userKey string, postID uuid.UUID, action Action) (State, error) {
	if action != ActionLike && action != ActionDislike {
		return State{}, errs.Validation("action", "action must be like or dislike")
	}

	viewer := s.ids.IdentityFor(userKey, s.scope)

	current, err := s.store.PostState(ctx, viewer, postID)
	if err != nil {
		return State{}, err
	}

	next, _ := Apply(current, action)
	if err := s.store.Persist(ctx, viewer, postID, next.Value()); err != nil {
		return State{}, err
	}

	s.publish(ctx, postID, viewer, action, next.Value())
	return next, nil
}

func (s *service) ViewerState(ctx context.Context, userKey string, postID uuid.UUID) (State, error) {
	viewer := s.ids.IdentityFor(userKey, s.scope)
	return s.store.PostState(ctx, viewer, postID)
}

func (s *service) publish(ctx context.Context, postID uuid.UUID, viewer string, action Action, value int) {
	if s.producer == nil {
		return
	}
	b, err := json.Marshal(map[string]any{
		"event":   "engagement.changed",
		"post_id": postID,
		"viewer":  viewer,
		"action":  action,
		"value":   value,
	})
	if err != nil {
		log.Printf("event marshal: %v", err)
		return
	}
	if err := s.producer.Publish(ctx, postID.String(), b); err != nil {
		log.Printf("event publish engagement.changed: %v", err)
	}
}
