package models

import "time"

// Reaction statuses. Neutral records that a user interacted without taking a
// side; it counts as a reaction but is excluded from aggregate tallies.
const (
	ReactionLike    = "Like"
	ReactionDislike = "Dislike"
	ReactionNeutral = "Neutral"
)

// Reaction records a user's current reaction to a post.
// The combination of UserID and PostID is unique: a user has at most one
// reaction per post, transitioned in place rather than appended.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reactions_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_reactions_user_post" json:"post_id"`
	Status    string    `gorm:"not null;default:Neutral" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}

// ValidReactionStatus reports whether s is one of the three known statuses.
func ValidReactionStatus(s string) bool {
	switch s {
	case ReactionLike, ReactionDislike, ReactionNeutral:
		return true
	}
	return false
}
