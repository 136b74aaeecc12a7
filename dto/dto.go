// Package dto holds the request and response shapes of the JSON API.
package dto

import (
	"time"

	"socialapp/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func UserResponseFrom(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

type CreatePostRequest struct {
	AuthorID uint   `json:"author_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

type PostResponse struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func PostResponseFrom(p *models.Post) PostResponse {
	return PostResponse{ID: p.ID, AuthorID: p.AuthorID, Title: p.Title, Body: p.Body, CreatedAt: p.CreatedAt}
}

type FollowRequest struct {
	FollowerID uint `json:"follower_id"`
	FollowedID uint `json:"followed_id"`
}

type FollowResponse struct {
	ID         uint `json:"id"`
	FollowerID uint `json:"follower_id"`
	FollowedID uint `json:"followed_id"`
}

func FollowResponseFrom(f *models.Follow) FollowResponse {
	return FollowResponse{ID: f.ID, FollowerID: f.FollowerID, FollowedID: f.FollowedID}
}

type LikeRequest struct {
	UserID uint `json:"user_id"`
	PostID uint `json:"post_id"`
}

type CountResponse struct {
	PostID uint  `json:"post_id"`
	Count  int64 `json:"count"`
}

type LikedResponse struct {
	UserID uint `json:"user_id"`
	PostID uint `json:"post_id"`
	Liked  bool `json:"liked"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
