package handlers

import (
	"encoding/json"
	"net/http"

	"socialapp/dto"
	"socialapp/monitoring"
	"socialapp/services"
)

// LikeHandler handles like graph endpoints
type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	var req dto.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON")
		return
	}

	if err := h.likes.Like(req.UserID, req.PostID); err != nil {
		writeError(w, err)
		return
	}

	monitoring.LikesCreated.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	var req dto.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON")
		return
	}

	if err := h.likes.Unlike(req.UserID, req.PostID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LikeHandler) Count(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	count, err := h.likes.CountLikes(postID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CountResponse{PostID: postID, Count: count})
}

func (h *LikeHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	postID, err := queryID(r, "postId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	liked, err := h.likes.IsLiked(userID, postID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LikedResponse{UserID: userID, PostID: postID, Liked: liked})
}
