package models

// Follow is a directed edge in the follow graph. It references the two
// accounts by identifier only; the graph is never materialized as object
// pointers on User.
type Follow struct {
	ID         uint `gorm:"primaryKey;column:follow_id" json:"id"`
	FollowerID uint `gorm:"column:follower_id;not null;uniqueIndex:idx_follows_pair,priority:1;index:idx_follows_follower" json:"follower_id"`
	FollowedID uint `gorm:"column:followed_id;not null;uniqueIndex:idx_follows_pair,priority:2;index:idx_follows_followed" json:"followed_id"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}
