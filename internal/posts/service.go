package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"board-service/internal/errs"
	"board-service/internal/identity"
	"board-service/pkg/kafka"
)

const MaxContentLength = 500

type Service interface {
	Create(ctx context.Context, userKey, content string, tags []string, imageURL *string) (*Post, error)
	List(ctx context.Context, filter Filter) ([]Post, error)
	Get(ctx context.Context, id uuid.UUID) (*Post, error)
}

type service struct {
	repo     Repository
	ids      *identity.Provider
	scope    string
	producer *kafka.Producer
}

func NewService(repo Repository, ids *identity.Provider, scope string, producer *kafka.Producer) Service {
	return &service{repo: repo, ids: ids, scope: scope, producer: producer}
}

// Create validates and persists a post. Creation is pessimistic: the caller
// only sees the post once the store confirms it, with the server-assigned id
// and timestamp.
func (s *service) Create(ctx context.Context, userKey, content string, tags []string, imageURL *string) (*Post, error) {
	n := utf8.RuneCountInString(content)
	if n == 0 {
		return nil, errs.Validation("content", "content is empty")
	}
	if n > MaxContentLength {
		return nil, errs.Validation("content", fmt.Sprintf("content exceeds %d characters", MaxContentLength))
	}

	normalized, err := NormalizeTags(tags)
	if err != nil {
		return nil, err
	}

	p := &Post{
		ID:          uuid.New(),
		Content:     content,
		Tags:        normalized,
		ImageURL:    imageURL,
		AnonymousID: s.ids.IdentityFor(userKey, s.scope),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, "post.created", p.ID.String(), map[string]any{
		"post_id":      p.ID,
		"anonymous_id": p.AnonymousID,
		"tags":         []string(p.Tags),
		"created_at":   p.CreatedAt,
	})
	return p, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]Post, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// publish is best-effort; a dropped event never fails the user action.
func (s *service) publish(ctx context.Context, event, key string, payload map[string]any) {
	if s.producer == nil {
		return
	}
	payload["event"] = event
	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("event marshal: %v", err)
		return
	}
	if err := s.producer.Publish(ctx, key, b); err != nil {
		log.Printf("event publish %s: %v", event, err)
	}
}
