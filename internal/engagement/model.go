package engagement

import (
	"time"

	"github.com/google/uuid"
)

// Reaction is one viewer's standing reaction to a subject. Value is +1 or
// -1; a neutral viewer has no row. One of PostID/CommentID is set; the
// per-subject unique indexes make a racing duplicate insert fail its
// transaction instead of leaving two rows behind.
type Reaction struct {
	ID        uint       `gorm:"primaryKey"`
	ViewerID  string     `gorm:"uniqueIndex:uniq_reaction_post;uniqueIndex:uniq_reaction_comment"`
	PostID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_reaction_post"`
	CommentID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_reaction_comment"`
	Value     int
	CreatedAt time.Time
}
