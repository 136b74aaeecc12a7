package services

import (
	"errors"

	"socialapp/apperrors"
	"socialapp/models"
	"socialapp/repositories"

	"gorm.io/gorm"
)

// LikeService owns the like graph. Lookup order is user before post, so when
// both sides are missing the reported entity is the user.
type LikeService struct {
	likes repositories.LikeRepository
	users repositories.UserRepository
	posts repositories.PostRepository
}

func NewLikeService(likes repositories.LikeRepository, users repositories.UserRepository, posts repositories.PostRepository) *LikeService {
	return &LikeService{likes: likes, users: users, posts: posts}
}

// Like creates the user -> post edge. Same race posture as Follow: the
// pre-check is a fast path, the unique index is authoritative, and either
// path reports Conflict.
func (s *LikeService) Like(userID, postID uint) error {
	if err := s.resolvePair(userID, postID); err != nil {
		return err
	}

	exists, err := s.likes.Exists(userID, postID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewConflict("already liked: user=%d post=%d", userID, postID)
	}

	err = s.likes.Create(&models.PostLike{UserID: userID, PostID: postID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflict("already liked: user=%d post=%d", userID, postID)
	}
	return err
}

// Unlike deletes the edge if present; a redundant unlike is a no-op.
func (s *LikeService) Unlike(userID, postID uint) error {
	if err := s.resolvePair(userID, postID); err != nil {
		return err
	}
	return s.likes.Delete(userID, postID)
}

// CountLikes returns the number of like edges referencing the post.
func (s *LikeService) CountLikes(postID uint) (int64, error) {
	if err := s.resolvePost(postID); err != nil {
		return 0, err
	}
	return s.likes.Count(postID)
}

// IsLiked reports whether the user has liked the post.
func (s *LikeService) IsLiked(userID, postID uint) (bool, error) {
	if err := s.resolvePair(userID, postID); err != nil {
		return false, err
	}
	return s.likes.Exists(userID, postID)
}

func (s *LikeService) resolvePair(userID, postID uint) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFound("user", userID)
	}
	return s.resolvePost(postID)
}

func (s *LikeService) resolvePost(postID uint) error {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperrors.NewNotFound("post", postID)
	}
	return nil
}
