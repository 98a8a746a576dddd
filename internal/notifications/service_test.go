package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"board-service/internal/errs"
)

type fakeNotifRepo struct {
	byScope map[string][]Notification
}

func newFakeNotifRepo() *fakeNotifRepo {
	return &fakeNotifRepo{byScope: map[string][]Notification{}}
}

func (f *fakeNotifRepo) Push(_ context.Context, scope string, n Notification) error {
	f.byScope[scope] = append([]Notification{n}, f.byScope[scope]...)
	return nil
}

func (f *fakeNotifRepo) Recent(_ context.Context, scope string, limit int64) ([]Notification, error) {
	list := f.byScope[scope]
	if int64(len(list)) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeNotifRepo) MarkRead(_ context.Context, scope, id string) error {
	for i := range f.byScope[scope] {
		if f.byScope[scope][i].ID == id {
			f.byScope[scope][i].Read = true
			return nil
		}
	}
	return errs.NotFound("notification", id)
}

func TestServiceRecent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotifRepo()
	svc := NewService(repo)

	t.Run("caps at the ten most recent", func(t *testing.T) {
		for i := 0; i < 15; i++ {
			_, err := svc.Create(ctx, "campus", "title", "content")
			require.NoError(t, err)
		}
		list, err := svc.Recent(ctx, "campus")
		require.NoError(t, err)
		require.Len(t, list, RecentLimit)
	})

	t.Run("mark read flips the flag", func(t *testing.T) {
		n, err := svc.Create(ctx, "dorm", "hi", "there")
		require.NoError(t, err)
		require.False(t, n.Read)

		require.NoError(t, svc.MarkRead(ctx, "dorm", n.ID))
		list, err := svc.Recent(ctx, "dorm")
		require.NoError(t, err)
		require.True(t, list[0].Read)
	})
}

func TestHasUnread(t *testing.T) {
	require.False(t, HasUnread(nil))
	require.False(t, HasUnread([]Notification{{Read: true}, {Read: true}}))
	require.True(t, HasUnread([]Notification{{Read: true}, {Read: false}}))
}
