package export

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/resumes"
	"resumeforge/internal/shared/server/middleware"
	"resumeforge/internal/shared/server/respond"
)

// Handler wires the export endpoint to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/export", h.export)
	rg.GET("/resumes/:id/export", h.export)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	artifact, err := h.Svc.Export(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrSurfaceUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "export_unavailable", "PDF rendering is unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "export failed", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", artifact.PDF)
}
