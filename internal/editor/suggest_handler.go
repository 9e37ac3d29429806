package editor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/shared/server/respond"
	"resumeforge/internal/suggest"
	"resumeforge/resume/render"
)

type contentRequest struct {
	Section suggest.SectionKind `json:"section"`
	Context string              `json:"context"`
}

type analyzeRequest struct {
	JobDescription string `json:"jobDescription"`
}

type bulletsRequest struct {
	Role             string `json:"role"`
	Company          string `json:"company"`
	Responsibilities string `json:"responsibilities"`
}

func (h *Handler) registerSuggestRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/suggest/content", h.suggestContent)
	rg.POST("/resumes/:id/suggest/analyze", h.suggestAnalyze)
	rg.POST("/resumes/:id/suggest/bullets", h.suggestBullets)
}

func (h *Handler) suggestContent(c *gin.Context) {
	user := sessionUser(c)

	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Manager.Session(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.writeEditError(c, err)
		return
	}

	result, kept, err := session.RequestContent(c.Request.Context(), h.Gateway, req.Section, req.Context)
	if err != nil {
		h.writeSuggestError(c, err)
		return
	}
	if !kept {
		respond.OK(c, gin.H{"stale": true})
		return
	}
	respond.OK(c, gin.H{"section": result.Section, "suggestions": result.Candidates})
}

func (h *Handler) suggestAnalyze(c *gin.Context) {
	user := sessionUser(c)

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	session, err := h.Manager.Session(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.writeEditError(c, err)
		return
	}

	resumeText := render.PlainText(session.Preview())
	analysis, kept, err := session.RequestAnalysis(c.Request.Context(), h.Gateway, resumeText, req.JobDescription)
	if err != nil {
		h.writeSuggestError(c, err)
		return
	}
	if !kept {
		respond.OK(c, gin.H{"stale": true})
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) suggestBullets(c *gin.Context) {
	user := sessionUser(c)

	var req bulletsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Manager.Session(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.writeEditError(c, err)
		return
	}

	bullets, kept, err := session.RequestBulletPoints(c.Request.Context(), h.Gateway, req.Role, req.Company, req.Responsibilities)
	if err != nil {
		h.writeSuggestError(c, err)
		return
	}
	if !kept {
		respond.OK(c, gin.H{"stale": true})
		return
	}
	respond.OK(c, gin.H{"bulletPoints": bullets})
}

// writeSuggestError maps gateway failures onto the error envelope. Upstream
// and parse failures surface as bad gateway so the caller can retry.
func (h *Handler) writeSuggestError(c *gin.Context, err error) {
	var validation suggest.ValidationError
	var upstream suggest.UpstreamError
	var parse suggest.ParseError
	switch {
	case errors.Is(err, suggest.ErrServiceUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "service_unavailable", "suggestion service is not configured", nil)
	case errors.As(err, &validation):
		respond.Error(c, http.StatusBadRequest, "validation_error", validation.Error(), nil)
	case errors.As(err, &parse):
		respond.Error(c, http.StatusBadGateway, "parse_error", "suggestion response could not be parsed", nil)
	case errors.As(err, &upstream):
		respond.Error(c, http.StatusBadGateway, "upstream_error", "suggestion provider request failed", nil)
	case errors.Is(err, ErrSessionClosed):
		respond.Error(c, http.StatusConflict, "session_closed", "editing session closed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "suggestion request failed", err.Error())
	}
}
