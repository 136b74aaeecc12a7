package handlers

import (
	"encoding/json"
	"net/http"

	"socialapp/dto"
	"socialapp/models"
	"socialapp/monitoring"
	"socialapp/services"
)

// FollowHandler handles follow graph endpoints
type FollowHandler struct {
	follows *services.FollowService
}

func NewFollowHandler(follows *services.FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req dto.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON")
		return
	}

	follow, err := h.follows.Follow(req.FollowerID, req.FollowedID)
	if err != nil {
		writeError(w, err)
		return
	}

	monitoring.FollowsCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.FollowResponseFrom(follow))
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	var req dto.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON")
		return
	}

	if err := h.follows.Unfollow(req.FollowerID, req.FollowedID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FollowHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	follows, err := h.follows.ListFollowing(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowResponses(follows))
}

func (h *FollowHandler) ListFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	follows, err := h.follows.ListFollowers(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowResponses(follows))
}

func toFollowResponses(follows []models.Follow) []dto.FollowResponse {
	out := make([]dto.FollowResponse, len(follows))
	for i := range follows {
		out[i] = dto.FollowResponseFrom(&follows[i])
	}
	return out
}
