package posts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"board-service/internal/errs"
)

type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	List(ctx context.Context, filter Filter) ([]Post, error)
	ApplyCounterDelta(ctx context.Context, id uuid.UUID, field string, delta int) error
	SetCommentCount(ctx context.Context, id uuid.UUID, count int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	if err := db.AutoMigrate(&Post{}); err != nil {
		panic("failed to auto-migrate Post model: " + err.Error())
	}
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, post *Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return errs.Transport("create post", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	var post Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("post", id.String())
	}
	if err != nil {
		return nil, errs.Transport("get post", err)
	}
	return &post, nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Post, error) {
	q := r.db.WithContext(ctx).Model(&Post{})

	if len(filter.Tags) > 0 {
		q = q.Where("tags @> ?", pq.Array(filter.Tags))
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where(
			"content ILIKE ? OR EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE ?)",
			like, like,
		)
	}

	switch filter.Order {
	case OrderTrending:
		q = q.Order("(likes - dislikes) DESC, created_at DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var out []Post
	if err := q.Find(&out).Error; err != nil {
		return nil, errs.Transport("list posts", err)
	}
	return out, nil
}

// ApplyCounterDelta moves a counter by delta atomically. Absolute sets lose
// updates under concurrent writers; the increment form does not, and the
// GREATEST clamp keeps counters non-negative.
func (r *repository) ApplyCounterDelta(ctx context.Context, id uuid.UUID, field string, delta int) error {
	if field != FieldLikes && field != FieldDislikes {
		return errs.Validation("field", "unknown counter "+field)
	}
	res := r.db.WithContext(ctx).Exec(
		`UPDATE posts SET `+field+` = GREATEST(`+field+` + ?, 0) WHERE id = ?`,
		delta, id,
	)
	if res.Error != nil {
		return errs.Transport("update "+field, res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("post", id.String())
	}
	return nil
}

// SetCommentCount writes the absolute comment count. The only caller derives
// the value with a fresh COUNT over the comments table, so concurrent
// writers converge on the true count.
func (r *repository) SetCommentCount(ctx context.Context, id uuid.UUID, count int) error {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE posts SET comments = ? WHERE id = ?`, count, id,
	)
	if res.Error != nil {
		return errs.Transport("update comments", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("post", id.String())
	}
	return nil
}
