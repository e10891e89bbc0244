// internal/discovery/handlers.go

package discovery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/amora-dating/amora-backend/internal/auth"
	"github.com/amora-dating/amora-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetPotentialMatches(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	candidates, err := h.service.GetCandidates(r.Context(), viewerID, limit)
	if err != nil {
		h.respondServiceError(w, err, "Failed to get potential matches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, candidates)
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	result, ok := h.handleSwipe(w, r, KindLike)
	if !ok {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, LikeResponse{Liked: true, Match: result.Match})
}

func (h *Handler) Dislike(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.handleSwipe(w, r, KindDislike); !ok {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, DislikeResponse{Disliked: true})
}

func (h *Handler) SuperLike(w http.ResponseWriter, r *http.Request) {
	result, ok := h.handleSwipe(w, r, KindSuperlike)
	if !ok {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, SuperLikeResponse{SuperLiked: true, Match: result.Match})
}

// handleSwipe runs the shared decode/validate/record path. It writes
// the error response itself and reports ok=false when it did.
func (h *Handler) handleSwipe(w http.ResponseWriter, r *http.Request, kind SwipeKind) (*SwipeResult, bool) {
	actorID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}

	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	result, err := h.service.RecordSwipe(r.Context(), actorID, req.TargetUserID, kind)
	if err != nil {
		h.respondServiceError(w, err, "Failed to record swipe")
		return nil, false
	}

	return result, true
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	matches, err := h.service.ListMatches(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to list matches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, matches)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	matchID := mux.Vars(r)["id"]

	match, err := h.service.GetMatch(r.Context(), userID, matchID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to get match")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, match)
}

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	prefs, err := h.service.GetPreferences(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to get preferences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, prefs)
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	prefs, err := h.service.UpdatePreferences(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "Failed to update preferences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, prefs)
}

// respondServiceError maps engine errors onto the HTTP taxonomy
func (h *Handler) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrMatchNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrSelfSwipe),
		errors.Is(err, ErrInvalidKind),
		errors.Is(err, ErrInvalidLimit),
		errors.Is(err, ErrInvalidAgeRange),
		errors.Is(err, ErrInvalidPreferences):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
