package posts

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Post struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Content     string         `json:"content"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageURL    *string        `gorm:"column:image_url" json:"image_url,omitempty"`
	AnonymousID string         `gorm:"column:anonymous_id" json:"anonymous_id"`
	CreatedAt   time.Time      `json:"created_at"`
	Likes       int            `json:"likes"`
	Dislikes    int            `json:"dislikes"`
	Comments    int            `json:"comments"`
}

type Order string

const (
	OrderRecent   Order = "recent"
	OrderTrending Order = "trending"
)

// Filter narrows a listing. Tags must ALL be present on a post; Query is a
// case-insensitive substring match against content or any tag. Both compose
// with AND.
type Filter struct {
	Tags  []string
	Query string
	Order Order
}

// Counter fields addressable through ApplyCounterDelta.
const (
	FieldLikes    = "likes"
	FieldDislikes = "dislikes"
)
