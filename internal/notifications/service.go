package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecentLimit caps the feed at the most recent records, matching the query
// surface the consuming view reads.
const RecentLimit = 10

type Service interface {
	Create(ctx context.Context, scope, title, content string) (Notification, error)
	Recent(ctx context.Context, scope string) ([]Notification, error)
	MarkRead(ctx context.Context, scope, id string) error
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Create(ctx context.Context, scope, title, content string) (Notification, error) {
	n := Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	return n, s.repo.Push(ctx, scope, n)
}

func (s *service) Recent(ctx context.Context, scope string) ([]Notification, error) {
	return s.repo.Recent(ctx, scope, RecentLimit)
}

func (s *service) MarkRead(ctx context.Context, scope, id string) error {
	return s.repo.MarkRead(ctx, scope, id)
}

// HasUnread reports whether any record is unread.
func HasUnread(list []Notification) bool {
	for _, n := range list {
		if !n.Read {
			return true
		}
	}
	return false
}
