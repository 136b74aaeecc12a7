package repositories

import (
	"socialapp/models"

	"gorm.io/gorm"
)

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) Count(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) Create(like *models.PostLike) error {
	return r.db.Create(like).Error
}

// Delete removes the edge for the pair if present; deleting a missing edge is
// not an error.
func (r *likeRepository) Delete(userID, postID uint) error {
	return r.db.
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.PostLike{}).Error
}
