package services

import (
	"socialapp/apperrors"
	"socialapp/models"
	"socialapp/pagination"
	"socialapp/repositories"

	"github.com/sirupsen/logrus"
)

// PostService owns post creation and every read path over posts, including
// the feed. The feed is composed at read time: resolve the follow set, then
// page over posts authored by that set, newest first.
type PostService struct {
	posts   repositories.PostRepository
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

func NewPostService(posts repositories.PostRepository, users repositories.UserRepository, follows repositories.FollowRepository) *PostService {
	return &PostService{posts: posts, users: users, follows: follows}
}

// CreatePost persists a post for the author. The store assigns the creation
// timestamp; title and body are stored exactly as given.
func (s *PostService) CreatePost(authorID uint, title, body string) (*models.Post, error) {
	if err := s.resolveUser("author", authorID); err != nil {
		return nil, err
	}

	post := &models.Post{AuthorID: authorID, Title: title, Body: body}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"post_id":   post.ID,
		"author_id": authorID,
	}).Info("post created")
	return post, nil
}

// GetByID returns the post or NotFound.
func (s *PostService) GetByID(postID uint) (*models.Post, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewNotFound("post", postID)
	}
	return post, nil
}

// ListByAuthor returns one page of the author's posts, newest first.
func (s *PostService) ListByAuthor(authorID uint, req pagination.Request) (pagination.Page[models.Post], error) {
	if err := s.resolveUser("author", authorID); err != nil {
		return pagination.Page[models.Post]{}, err
	}

	posts, total, err := s.posts.FindPageByAuthor(authorID, req)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	return pagination.NewPage(posts, req, total), nil
}

// FeedFor returns one page of posts authored by the accounts the user
// follows, newest first. When the user follows nobody the empty page is
// returned without touching the post store.
func (s *PostService) FeedFor(userID uint, req pagination.Request) (pagination.Page[models.Post], error) {
	if err := s.resolveUser("user", userID); err != nil {
		return pagination.Page[models.Post]{}, err
	}

	following, err := s.follows.FindAllByFollower(userID)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	if len(following) == 0 {
		return pagination.Empty[models.Post](req), nil
	}

	authorIDs := make([]uint, len(following))
	for i, f := range following {
		authorIDs[i] = f.FollowedID
	}

	posts, total, err := s.posts.FindPageByAuthorIn(authorIDs, req)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	return pagination.NewPage(posts, req, total), nil
}

func (s *PostService) resolveUser(entity string, id uint) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFound(entity, id)
	}
	return nil
}
