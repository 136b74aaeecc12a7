package repositories

import (
	"socialapp/models"
	"socialapp/pagination"
)

// Find* methods return (nil, nil) when the record is absent; deciding whether
// absence is an error belongs to the services.

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
}

type PostRepository interface {
	FindByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	// FindPageByAuthor returns one window of the author's posts ordered by
	// created_at descending (post_id descending on ties) plus the total count.
	FindPageByAuthor(authorID uint, req pagination.Request) ([]models.Post, int64, error)
	// FindPageByAuthorIn is the feed query: same ordering over every post
	// whose author is in authorIDs.
	FindPageByAuthorIn(authorIDs []uint, req pagination.Request) ([]models.Post, int64, error)
}

type FollowRepository interface {
	Exists(followerID, followedID uint) (bool, error)
	Find(followerID, followedID uint) (*models.Follow, error)
	FindAllByFollower(userID uint) ([]models.Follow, error)
	FindAllByFollowed(userID uint) ([]models.Follow, error)
	Create(follow *models.Follow) error
	Delete(follow *models.Follow) error
}

type LikeRepository interface {
	Exists(userID, postID uint) (bool, error)
	Count(postID uint) (int64, error)
	Create(like *models.PostLike) error
	Delete(userID, postID uint) error
}
