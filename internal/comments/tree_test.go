package comments

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func flat(id uuid.UUID, parent *uuid.UUID, createdAt time.Time) Comment {
	return Comment{ID: id, PostID: uuid.Nil, ParentID: parent, CreatedAt: createdAt}
}

func TestBuildThreadTree(t *testing.T) {
	base := time.Now()

	t.Run("two replies keep insertion order", func(t *testing.T) {
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		tree := BuildThreadTree([]Comment{
			flat(a, nil, base),
			flat(b, &a, base.Add(time.Second)),
			flat(c, &a, base.Add(2*time.Second)),
		})

		require.Len(t, tree, 1)
		require.Equal(t, a, tree[0].ID)
		require.Len(t, tree[0].Replies, 2)
		require.Equal(t, b, tree[0].Replies[0].ID)
		require.Equal(t, c, tree[0].Replies[1].ID)
	})

	t.Run("unbounded nesting", func(t *testing.T) {
		ids := make([]uuid.UUID, 6)
		list := make([]Comment, 6)
		for i := range ids {
			ids[i] = uuid.New()
			var parent *uuid.UUID
			if i > 0 {
				parent = &ids[i-1]
			}
			list[i] = flat(ids[i], parent, base.Add(time.Duration(i)*time.Second))
		}

		tree := BuildThreadTree(list)
		require.Len(t, tree, 1)
		node := tree[0]
		for i := 1; i < len(ids); i++ {
			require.Len(t, node.Replies, 1)
			node = node.Replies[0]
			require.Equal(t, ids[i], node.ID)
		}
		require.Empty(t, node.Replies)
	})

	t.Run("multiple top-level comments keep order", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		tree := BuildThreadTree([]Comment{
			flat(a, nil, base),
			flat(b, nil, base.Add(time.Second)),
		})
		require.Len(t, tree, 2)
		require.Equal(t, a, tree[0].ID)
		require.Equal(t, b, tree[1].ID)
	})

	t.Run("dangling parent is dropped", func(t *testing.T) {
		missing := uuid.New()
		orphan := uuid.New()
		root := uuid.New()
		tree := BuildThreadTree([]Comment{
			flat(root, nil, base),
			flat(orphan, &missing, base.Add(time.Second)),
		})
		require.Len(t, tree, 1)
		require.Equal(t, root, tree[0].ID)
		require.Empty(t, tree[0].Replies)
	})

	t.Run("self-parenting never attaches", func(t *testing.T) {
		a := uuid.New()
		tree := BuildThreadTree([]Comment{flat(a, &a, base)})
		require.Empty(t, tree)
	})

	t.Run("no comment appears as its own descendant", func(t *testing.T) {
		// a and b claim each other as parents: at most one link survives.
		a, b := uuid.New(), uuid.New()
		tree := BuildThreadTree([]Comment{
			flat(a, &b, base),
			flat(b, &a, base.Add(time.Second)),
		})
		for _, root := range tree {
			seen := map[uuid.UUID]bool{}
			var walk func(n *ThreadNode)
			walk = func(n *ThreadNode) {
				require.False(t, seen[n.ID])
				seen[n.ID] = true
				for _, r := range n.Replies {
					walk(r)
				}
			}
			walk(root)
		}
	})

	t.Run("empty input yields empty forest", func(t *testing.T) {
		require.Empty(t, BuildThreadTree(nil))
	})
}
