package models

// PostLike is an edge from a user to a post. The (user_id, post_id) pair is
// unique at the schema level; that constraint, not the service pre-check, is
// what ultimately guards against concurrent duplicate likes.
type PostLike struct {
	ID     uint `gorm:"primaryKey;column:like_id" json:"id"`
	UserID uint `gorm:"column:user_id;not null;uniqueIndex:idx_post_likes_pair,priority:1" json:"user_id"`
	PostID uint `gorm:"column:post_id;not null;uniqueIndex:idx_post_likes_pair,priority:2;index:idx_post_likes_post" json:"post_id"`
}

// TableName overrides the table name used by GORM
func (PostLike) TableName() string {
	return "post_likes"
}
