package posts

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"board-service/internal/errs"
	"board-service/internal/identity"
)

type fakeRepo struct {
	created []*Post
	listed  Filter
	posts   []Post
	fail    error
}

func (f *fakeRepo) Create(_ context.Context, p *Post) error {
	if f.fail != nil {
		return f.fail
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, errs.NotFound("post", id.String())
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]Post, error) {
	f.listed = filter
	return f.posts, nil
}

func (f *fakeRepo) ApplyCounterDelta(context.Context, uuid.UUID, string, int) error { return nil }
func (f *fakeRepo) SetCommentCount(context.Context, uuid.UUID, int) error           { return nil }

func newTestService(repo Repository) Service {
	return NewService(repo, identity.NewProvider("test-secret"), "campus", nil)
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores normalized post with zeroed counters", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		p, err := svc.Create(ctx, "alice@college.edu", "Hello campus", []string{"Events "}, nil)
		require.NoError(t, err)
		require.Equal(t, []string{"events"}, []string(p.Tags))
		require.NotEqual(t, uuid.Nil, p.ID)
		require.False(t, p.CreatedAt.IsZero())
		require.Zero(t, p.Likes)
		require.Zero(t, p.Dislikes)
		require.Zero(t, p.Comments)
		require.Len(t, repo.created, 1)
	})

	t.Run("same author gets the same pseudonym", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		a, err := svc.Create(ctx, "alice@college.edu", "first", nil, nil)
		require.NoError(t, err)
		b, err := svc.Create(ctx, "alice@college.edu", "second", nil, nil)
		require.NoError(t, err)
		require.Equal(t, a.AnonymousID, b.AnonymousID)
	})

	t.Run("rejects empty content without persisting", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, "", "", nil, nil)
		require.True(t, errs.IsValidation(err))
		require.Empty(t, repo.created)
	})

	t.Run("rejects content over the limit", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, "", strings.Repeat("x", MaxContentLength+1), nil, nil)
		require.True(t, errs.IsValidation(err))
	})

	t.Run("content at the limit passes", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, "", strings.Repeat("x", MaxContentLength), nil, nil)
		require.NoError(t, err)
	})

	t.Run("rejects six tags", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, "", "hi", []string{"a", "b", "c", "d", "e", "f"}, nil)
		require.True(t, errs.IsValidation(err))
		require.Empty(t, repo.created)
	})
}

func TestServiceList(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.List(context.Background(), Filter{Tags: []string{"events"}, Query: "pizza", Order: OrderTrending})
	require.NoError(t, err)
	require.Equal(t, []string{"events"}, repo.listed.Tags)
	require.Equal(t, "pizza", repo.listed.Query)
	require.Equal(t, OrderTrending, repo.listed.Order)
}
