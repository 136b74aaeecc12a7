package services

import (
	"errors"

	"socialapp/apperrors"
	"socialapp/models"
	"socialapp/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FollowService owns the follow graph: edge creation, removal, and the two
// adjacency queries. All mutation of follow edges goes through here.
type FollowService struct {
	follows repositories.FollowRepository
	users   repositories.UserRepository
}

func NewFollowService(follows repositories.FollowRepository, users repositories.UserRepository) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// Follow creates the follower -> followed edge. The existence pre-check gives
// the common case a clean Conflict message; under a race the schema's unique
// index is the real guard and its violation is normalized to the same
// Conflict.
func (s *FollowService) Follow(followerID, followedID uint) (*models.Follow, error) {
	if followerID == followedID {
		return nil, apperrors.NewInvalidOperation("you cannot follow yourself: id=%d", followerID)
	}

	if err := s.resolveUser("follower user", followerID); err != nil {
		return nil, err
	}
	if err := s.resolveUser("followed user", followedID); err != nil {
		return nil, err
	}

	exists, err := s.follows.Exists(followerID, followedID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("already following: %d -> %d", followerID, followedID)
	}

	follow := &models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := s.follows.Create(follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("already following: %d -> %d", followerID, followedID)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"follower_id": followerID,
		"followed_id": followedID,
	}).Info("follow edge created")
	return follow, nil
}

// Unfollow deletes the edge if it exists. A redundant unfollow succeeds
// silently.
func (s *FollowService) Unfollow(followerID, followedID uint) error {
	if err := s.resolveUser("follower user", followerID); err != nil {
		return err
	}
	if err := s.resolveUser("followed user", followedID); err != nil {
		return err
	}

	follow, err := s.follows.Find(followerID, followedID)
	if err != nil {
		return err
	}
	if follow == nil {
		return nil
	}
	return s.follows.Delete(follow)
}

// ListFollowing returns every edge where the user is the follower.
func (s *FollowService) ListFollowing(userID uint) ([]models.Follow, error) {
	if err := s.resolveUser("user", userID); err != nil {
		return nil, err
	}
	return s.follows.FindAllByFollower(userID)
}

// ListFollowers returns every edge where the user is the followed side.
func (s *FollowService) ListFollowers(userID uint) ([]models.Follow, error) {
	if err := s.resolveUser("user", userID); err != nil {
		return nil, err
	}
	return s.follows.FindAllByFollowed(userID)
}

func (s *FollowService) resolveUser(entity string, id uint) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFound(entity, id)
	}
	return nil
}
