package models

import "time"

// Post represents an authored post. AuthorID is the only link back to the
// user; the optional Author field is populated by Preload for responses.
type Post struct {
	ID        uint      `gorm:"primaryKey;column:post_id" json:"id"`
	AuthorID  uint      `gorm:"column:author_id;not null;index:idx_posts_author_created,priority:1" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"-"`
	Title     string    `gorm:"size:140;not null" json:"title"`
	Body      string    `gorm:"size:2000;not null" json:"body"`
	CreatedAt time.Time `gorm:"not null;index:idx_posts_author_created,priority:2" json:"created_at"`
}

// TableName overrides the table name used by GORM
func (Post) TableName() string {
	return "posts"
}
