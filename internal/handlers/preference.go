package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/services"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

type PreferenceHandler struct {
	log     *logger.Logger
	prefSvc services.PreferenceService
}

func NewPreferenceHandler(log *logger.Logger, prefSvc services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		log:     log.With("handler", "PreferenceHandler"),
		prefSvc: prefSvc,
	}
}

// POST /api/user-preferences
func (h *PreferenceHandler) SavePreferences(c *gin.Context) {
	var req types.UserPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.UserID == "" {
		RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("user_id is required"))
		return
	}

	if err := h.prefSvc.Save(c.Request.Context(), req); err != nil {
		h.log.Error("Failed to save preferences", "user_id", req.UserID, "error", err)
		RespondError(c, http.StatusInternalServerError, "preference_save_failed", err)
		return
	}
	RespondOK(c, gin.H{"message": "preferences saved"})
}

// GET /api/user-preferences/:user_id
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID := c.Param("user_id")

	pref, err := h.prefSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "preference_not_found", errors.New("preference not found"))
			return
		}
		h.log.Error("Failed to load preferences", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "preference_lookup_failed", err)
		return
	}
	RespondOK(c, pref)
}
