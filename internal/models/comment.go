package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a user's comment on a post.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"not null" json:"text"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	PostID    uint           `gorm:"not null" json:"post_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Post      *Post          `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CommentPage is one page of a post's comment thread.
type CommentPage struct {
	Data []*Comment `json:"data"`
	Meta PageMeta   `json:"meta"`
}
