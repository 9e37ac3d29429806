package editor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/resumes"
	"resumeforge/internal/shared/server/middleware"
	"resumeforge/internal/shared/server/respond"
	"resumeforge/internal/suggest"
	"resumeforge/internal/users"
	"resumeforge/resume/edit"
)

// Handler exposes the editing session over HTTP: edit ops, preview reads,
// suggestion application, and session teardown.
type Handler struct {
	Manager *Manager
	Gateway *suggest.Gateway
}

func NewHandler(manager *Manager, gateway *suggest.Gateway) *Handler {
	return &Handler{Manager: manager, Gateway: gateway}
}

// RegisterRoutes attaches editor routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/edit", h.applyOp)
	rg.GET("/resumes/:id/preview", h.preview)
	rg.POST("/resumes/:id/apply-suggestion", h.applySuggestion)
	rg.DELETE("/resumes/:id/session", h.closeSession)
	h.registerSuggestRoutes(rg)
}

func (h *Handler) applyOp(c *gin.Context) {
	user := sessionUser(c)
	resumeID := c.Param("id")

	var op Op
	if err := c.ShouldBindJSON(&op); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid edit op", nil)
		return
	}

	doc, preview, err := h.Manager.Apply(c.Request.Context(), user, resumeID, op)
	if err != nil {
		h.writeEditError(c, err)
		return
	}

	respond.OK(c, gin.H{"document": doc, "preview": preview})
}

func (h *Handler) preview(c *gin.Context) {
	user := sessionUser(c)

	session, err := h.Manager.Session(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.writeEditError(c, err)
		return
	}
	respond.OK(c, session.Preview())
}

type applySuggestionRequest struct {
	Section suggest.SectionKind `json:"section"`
	EntryID string              `json:"entryId"`
	Text    string              `json:"text"`
}

func (h *Handler) applySuggestion(c *gin.Context) {
	user := sessionUser(c)
	resumeID := c.Param("id")

	var req applySuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "section and text are required", nil)
		return
	}

	session, err := h.Manager.Session(c.Request.Context(), user, resumeID)
	if err != nil {
		h.writeEditError(c, err)
		return
	}

	doc, preview, err := session.ApplySuggestion(req.Section, req.EntryID, req.Text)
	if err != nil {
		h.writeEditError(c, err)
		return
	}
	if _, err := h.Manager.svc.SaveDocument(c.Request.Context(), user.ID, resumeID, doc); err != nil {
		h.writeEditError(c, err)
		return
	}

	respond.OK(c, gin.H{"document": doc, "preview": preview})
}

func (h *Handler) closeSession(c *gin.Context) {
	user := sessionUser(c)
	h.Manager.Close(user, c.Param("id"))
	respond.OK(c, gin.H{"closed": true})
}

// writeEditError maps editor failures onto the error envelope. A missing
// entry id is a non-fatal notice: the edit is rejected but the session stays
// usable.
func (h *Handler) writeEditError(c *gin.Context, err error) {
	var notFound edit.NotFoundError
	var unknownField edit.UnknownFieldError
	var validation suggest.ValidationError
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.As(err, &notFound):
		respond.Error(c, http.StatusNotFound, "entry_not_found", notFound.Error(), nil)
	case errors.As(err, &unknownField):
		respond.Error(c, http.StatusBadRequest, "validation_error", unknownField.Error(), nil)
	case errors.As(err, &validation):
		respond.Error(c, http.StatusBadRequest, "validation_error", validation.Error(), nil)
	case errors.Is(err, ErrSessionClosed):
		respond.Error(c, http.StatusConflict, "session_closed", "editing session closed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "edit failed", err.Error())
	}
}

// sessionUser builds the explicit session identity from the authenticated
// request.
func sessionUser(c *gin.Context) users.User {
	return users.User{
		ID:       middleware.UserIDFromContext(c),
		Email:    middleware.UserEmailFromContext(c),
		FullName: middleware.UserNameFromContext(c),
	}
}
