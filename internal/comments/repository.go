package comments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"board-service/internal/errs"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	if err := db.AutoMigrate(&Comment{}); err != nil {
		panic("failed to auto-migrate Comment model: " + err.Error())
	}
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return errs.Transport("create comment", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Comment, error) {
	var c Comment
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("comment", id.String())
	}
	if err != nil {
		return nil, errs.Transport("get comment", err)
	}
	return &c, nil
}

func (r *repository) ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error) {
	var out []Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, errs.Transport("list comments", err)
	}
	return out, nil
}

func (r *repository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Comment{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	if err != nil {
		return 0, errs.Transport("count comments", err)
	}
	return int(n), nil
}
