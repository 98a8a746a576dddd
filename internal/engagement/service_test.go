package engagement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"board-service/internal/errs"
	"board-service/internal/identity"
	"board-service/internal/posts"
)

// fakeStateStore replays reducer transitions against in-memory counters the
// way the gorm store does against postgres.
type fakeStateStore struct {
	values   map[string]int // viewer -> value
	likes    int
	dislikes int
	fail     error
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{values: map[string]int{}}
}

func (f *fakeStateStore) PostState(_ context.Context, viewer string, _ uuid.UUID) (State, error) {
	v := f.values[viewer]
	return State{
		Liked:    v > 0,
		Disliked: v < 0,
		Likes:    f.likes,
		Dislikes: f.dislikes,
	}, nil
}

func (f *fakeStateStore) Persist(_ context.Context, viewer string, _ uuid.UUID, value int) error {
	if f.fail != nil {
		return f.fail
	}
	prev := f.values[viewer]
	f.values[viewer] = value
	for _, d := range deltasBetween(prev, value) {
		switch d.Field {
		case posts.FieldLikes:
			f.likes += d.Delta
		case posts.FieldDislikes:
			f.dislikes += d.Delta
		}
	}
	return nil
}

func newTestEngagementService(store Store) Service {
	return NewService(store, identity.NewProvider("test-secret"), "campus", nil)
}

func TestServiceReact(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	t.Run("rejects unknown actions", func(t *testing.T) {
		svc := newTestEngagementService(newFakeStateStore())
		_, err := svc.React(ctx, "alice", postID, Action("love"))
		require.True(t, errs.IsValidation(err))
	})

	t.Run("reconciles against stored state across calls", func(t *testing.T) {
		store := newFakeStateStore()
		store.likes = 10
		svc := newTestEngagementService(store)

		st, err := svc.React(ctx, "alice", postID, ActionLike)
		require.NoError(t, err)
		require.True(t, st.Liked)
		require.Equal(t, 11, store.likes)

		st, err = svc.React(ctx, "alice", postID, ActionDislike)
		require.NoError(t, err)
		require.True(t, st.Disliked)
		require.False(t, st.Liked)
		require.Equal(t, 10, store.likes)
		require.Equal(t, 1, store.dislikes)
	})

	t.Run("two viewers contribute independently", func(t *testing.T) {
		store := newFakeStateStore()
		svc := newTestEngagementService(store)

		_, err := svc.React(ctx, "alice", postID, ActionLike)
		require.NoError(t, err)
		_, err = svc.React(ctx, "bob", postID, ActionLike)
		require.NoError(t, err)
		require.Equal(t, 2, store.likes)

		// Alice toggling off removes only her contribution.
		_, err = svc.React(ctx, "alice", postID, ActionLike)
		require.NoError(t, err)
		require.Equal(t, 1, store.likes)
	})

	t.Run("replayed transition leaves counters alone", func(t *testing.T) {
		store := newFakeStateStore()

		// Two requests racing on the same toggle both resolve to the same
		// target value; the second must not re-apply the delta.
		require.NoError(t, store.Persist(ctx, "viewer-1", postID, 1))
		require.NoError(t, store.Persist(ctx, "viewer-1", postID, 1))
		require.Equal(t, 1, store.likes)

		require.NoError(t, store.Persist(ctx, "viewer-1", postID, -1))
		require.Equal(t, 0, store.likes)
		require.Equal(t, 1, store.dislikes)
	})

	t.Run("viewer state round-trips", func(t *testing.T) {
		store := newFakeStateStore()
		svc := newTestEngagementService(store)

		_, err := svc.React(ctx, "alice", postID, ActionDislike)
		require.NoError(t, err)

		st, err := svc.ViewerState(ctx, "alice", postID)
		require.NoError(t, err)
		require.True(t, st.Disliked)

		other, err := svc.ViewerState(ctx, "bob", postID)
		require.NoError(t, err)
		require.False(t, other.Disliked)
		require.Equal(t, 1, other.Dislikes)
	})
}
