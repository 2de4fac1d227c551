package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a piece of content published by a user.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `json:"title"`
	Content string `gorm:"not null" json:"content"`
	UserID  uint   `gorm:"not null" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	// Reactions holds per-status counts, computed at query time. The Neutral
	// count is never included.
	Reactions map[string]int64 `gorm:"-" json:"reactions"`
	// CommentsCount is not persisted; computed at query time.
	CommentsCount int64          `gorm:"-" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// PageMeta describes the pagination envelope returned alongside list data.
type PageMeta struct {
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// FeedPage is one page of the denormalized post feed.
type FeedPage struct {
	Data []*Post  `json:"data"`
	Meta PageMeta `json:"meta"`
}

// CommenterStat pairs a commenting user with their comment count on a post.
type CommenterStat struct {
	User  *User `json:"user"`
	Count int64 `json:"count"`
}

// PostAnalytics is one row of the commenter-frequency report.
type PostAnalytics struct {
	Post           *Post            `json:"post"`
	CommenterStats []CommenterStat  `json:"commenterStats"`
	Reactions      map[string]int64 `json:"reactions"`
}
