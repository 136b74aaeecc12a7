package models

import "time"

// User represents an account in the database
type User struct {
	ID           uint      `gorm:"primaryKey;column:user_id" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:pw_hash;not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
