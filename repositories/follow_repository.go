package repositories

import (
	"errors"

	"socialapp/models"

	"gorm.io/gorm"
)

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Exists(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) Find(followerID, followedID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *followRepository) FindAllByFollower(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.
		Where("follower_id = ?", userID).
		Order("follow_id").
		Find(&follows).Error
	return follows, err
}

func (r *followRepository) FindAllByFollowed(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.
		Where("followed_id = ?", userID).
		Order("follow_id").
		Find(&follows).Error
	return follows, err
}

func (r *followRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *followRepository) Delete(follow *models.Follow) error {
	return r.db.Delete(follow).Error
}
