package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"socialapp/dto"
	"socialapp/models"
	"socialapp/monitoring"
	"socialapp/pagination"
	"socialapp/services"
)

const (
	maxTitleLen = 140
	maxBodyLen  = 2000
)

// PostHandler handles post creation, lookups, and the feed
type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Title) == "" || len(req.Title) > maxTitleLen {
		writeBadRequest(w, "title must be non-blank and at most 140 characters")
		return
	}
	if strings.TrimSpace(req.Body) == "" || len(req.Body) > maxBodyLen {
		writeBadRequest(w, "body must be non-blank and at most 2000 characters")
		return
	}

	post, err := h.posts.CreatePost(req.AuthorID, req.Title, req.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	monitoring.PostsCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.PostResponseFrom(post))
}

func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	post, err := h.posts.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.PostResponseFrom(post))
}

func (h *PostHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "authorId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	page, err := h.posts.ListByAuthor(authorID, pageRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostPage(page))
}

func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	page, err := h.posts.FeedFor(userID, pageRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}

	monitoring.FeedRequests.Inc()
	writeJSON(w, http.StatusOK, toPostPage(page))
}

func toPostPage(page pagination.Page[models.Post]) pagination.Page[dto.PostResponse] {
	content := make([]dto.PostResponse, len(page.Content))
	for i := range page.Content {
		content[i] = dto.PostResponseFrom(&page.Content[i])
	}
	return pagination.Page[dto.PostResponse]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
