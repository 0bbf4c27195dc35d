package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/services"
)

type PaperHandler struct {
	log      *logger.Logger
	paperSvc services.PaperService
}

func NewPaperHandler(log *logger.Logger, paperSvc services.PaperService) *PaperHandler {
	return &PaperHandler{
		log:      log.With("handler", "PaperHandler"),
		paperSvc: paperSvc,
	}
}

// GET /api/papers/:paper_id
func (h *PaperHandler) GetPaper(c *gin.Context) {
	paperID := c.Param("paper_id")

	detail, err := h.paperSvc.GetPaper(c.Request.Context(), paperID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "paper_not_found", errors.New("paper not found"))
			return
		}
		h.log.Error("Failed to load paper", "paper_id", paperID, "error", err)
		RespondError(c, http.StatusInternalServerError, "paper_lookup_failed", err)
		return
	}
	RespondOK(c, detail)
}

// GET /api/summaries/:paper_id
func (h *PaperHandler) GetSummary(c *gin.Context) {
	paperID := c.Param("paper_id")

	summary, err := h.paperSvc.GetSummary(c.Request.Context(), paperID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "summary_not_found", errors.New("summary not found"))
			return
		}
		h.log.Error("Failed to load summary", "paper_id", paperID, "error", err)
		RespondError(c, http.StatusInternalServerError, "summary_lookup_failed", err)
		return
	}
	RespondOK(c, summary)
}
