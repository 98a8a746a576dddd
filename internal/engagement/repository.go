package engagement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"board-service/internal/errs"
	"board-service/internal/posts"
)

type Store interface {
	// PostState reconstructs the viewer's state for a post from the stored
	// reaction row and the post's confirmed counters.
	PostState(ctx context.Context, viewer string, postID uuid.UUID) (State, error)
	// Persist writes the viewer's new reaction value and applies the counter
	// effects in one transaction. The effects are derived from the stored
	// previous value, read under a row lock, so stale callers cannot
	// double-count.
	Persist(ctx context.Context, viewer string, postID uuid.UUID, value int) error
}

// StoreWriter adapts a Store to the Session's Writer so the optimistic
// session confirms transitions against the backing store directly. The
// session's deltas are display-side only; the store re-derives the counter
// effects from the row it holds locked.
type StoreWriter struct {
	Store Store
}

func (w StoreWriter) Write(ctx context.Context, viewer, subject string, value int, _ []CounterDelta) error {
	id, err := uuid.Parse(subject)
	if err != nil {
		return errs.Validation("subject", "invalid post id")
	}
	return w.Store.Persist(ctx, viewer, id, value)
}

type store struct {
	db        *gorm.DB
	postsRepo posts.Repository
}

func NewStore(db *gorm.DB, postsRepo posts.Repository) Store {
	if err := db.AutoMigrate(&Reaction{}); err != nil {
		panic("failed to auto-migrate Reaction model: " + err.Error())
	}
	return &store{db: db, postsRepo: postsRepo}
}

func (s *store) PostState(ctx context.Context, viewer string, postID uuid.UUID) (State, error) {
	post, err := s.postsRepo.GetByID(ctx, postID)
	if err != nil {
		return State{}, err
	}

	st := State{Likes: post.Likes, Dislikes: post.Dislikes}

	var r Reaction
	err = s.db.WithContext(ctx).
		Where("viewer_id = ? AND post_id = ?", viewer, postID).
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return st, nil
	}
	if err != nil {
		return State{}, errs.Transport("get reaction", err)
	}

	st.Liked = r.Value > 0
	st.Disliked = r.Value < 0
	return st, nil
}

func (s *store) Persist(ctx context.Context, viewer string, postID uuid.UUID, value int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r Reaction
		prev := 0
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("viewer_id = ? AND post_id = ?", viewer, postID).
			First(&r).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return err
		default:
			prev = r.Value
		}
		// A second request replaying the same transition lands here and
		// leaves the counters alone.
		if prev == value {
			return nil
		}

		switch {
		case value == 0:
			if err := tx.Delete(&Reaction{}, r.ID).Error; err != nil {
				return err
			}
		case prev == 0:
			nr := Reaction{ViewerID: viewer, PostID: &postID, Value: value, CreatedAt: time.Now().UTC()}
			if err := tx.Create(&nr).Error; err != nil {
				return err
			}
		default:
			if err := tx.Model(&Reaction{}).Where("id = ?", r.ID).Update("value", value).Error; err != nil {
				return err
			}
		}

		// Atomic increments, never absolute sets: two viewers reacting at
		// once must not lose each other's update.
		for _, d := range deltasBetween(prev, value) {
			if err := tx.Exec(
				`UPDATE posts SET `+d.Field+` = GREATEST(`+d.Field+` + ?, 0) WHERE id = ?`,
				d.Delta, postID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errs.Transport("persist reaction", err)
	}
	return nil
}
