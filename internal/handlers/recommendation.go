package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/services"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

type RecommendationHandler struct {
	log    *logger.Logger
	recSvc services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		log:    log.With("handler", "RecommendationHandler"),
		recSvc: recSvc,
	}
}

// POST /api/recommendations
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req types.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.UserID == "" {
		RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("user_id is required"))
		return
	}

	resp, err := h.recSvc.GetRecommendations(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Failed to compute recommendations", "user_id", req.UserID, "error", err)
		RespondError(c, http.StatusInternalServerError, "recommendation_failed", err)
		return
	}
	RespondOK(c, resp)
}
