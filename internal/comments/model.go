package comments

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PostID      uuid.UUID  `gorm:"type:uuid;index" json:"post_id"`
	Content     string     `json:"content"`
	ParentID    *uuid.UUID `gorm:"type:uuid" json:"parent_id,omitempty"`
	AnonymousID string     `gorm:"column:anonymous_id" json:"anonymous_id"`
	CreatedAt   time.Time  `json:"created_at"`
}
