package api_router

import (
	"github.com/gin-gonic/gin"
	"github.com/haierkeys/simple-notes-service/internal/app"
	"github.com/haierkeys/simple-notes-service/internal/dto"
	pkgapp "github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"
	"github.com/haierkeys/simple-notes-service/pkg/convert"
	apperrors "github.com/haierkeys/simple-notes-service/pkg/errors"
	"go.uber.org/zap"
)

// NoteHandler handles the note resource routes. Every route runs behind
// the auth gate; the ownership rules live in the service layer.
type NoteHandler struct {
	*Handler
}

// NewNoteHandler creates a NoteHandler instance.
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// noteID parses the :id path segment. A non-numeric or non-positive id
// names a note that cannot exist, so the caller reports not found.
func noteID(c *gin.Context) (int64, bool) {
	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Create inserts a new note owned by the authenticated user.
// POST /api/notes, body {title, content, user} -> 204, 403 on user mismatch.
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteModifyRequest{}

	if err := c.ShouldBindJSON(params); err != nil {
		h.App.Logger().Error("NoteHandler.Create bind err", zap.Error(err))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	user := pkgapp.GetUser(c)
	ctx := c.Request.Context()

	if _, err := h.App.NoteService.Create(ctx, user, params); err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContent()
}

// List returns all notes owned by the authenticated user.
// GET /api/notes -> 200 with a possibly empty array.
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	user := pkgapp.GetUser(c)
	ctx := c.Request.Context()

	notes, err := h.App.NoteService.List(ctx, user)
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notes))
}

// Get returns one owned note.
// GET /api/notes/:id -> 200, 404 when missing or owned by another user.
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := noteID(c)
	if !ok {
		response.ToResponse(code.ErrorNoteNotFound)
		return
	}

	user := pkgapp.GetUser(c)
	ctx := c.Request.Context()

	note, err := h.App.NoteService.Get(ctx, user, id)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Replace overwrites title, content and user of an owned note.
// PUT /api/notes/:id -> 204, 404 when missing, 403 on user mismatch.
func (h *NoteHandler) Replace(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := noteID(c)
	if !ok {
		response.ToResponse(code.ErrorNoteNotFound)
		return
	}

	params := &dto.NoteModifyRequest{}
	if err := c.ShouldBindJSON(params); err != nil {
		h.App.Logger().Error("NoteHandler.Replace bind err", zap.Error(err))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	user := pkgapp.GetUser(c)
	ctx := c.Request.Context()

	if err := h.App.NoteService.Replace(ctx, user, id, params); err != nil {
		h.logError(ctx, "NoteHandler.Replace", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContent()
}

// Patch replaces only the provided fields of an owned note.
// PATCH /api/notes/:id -> 204, 404 when missing, 403 on user mismatch.
func (h *NoteHandler) Patch(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := noteID(c)
	if !ok {
		response.ToResponse(code.ErrorNoteNotFound)
		return
	}

	params := &dto.NotePatchRequest{}
	if err := c.ShouldBindJSON(params); err != nil {
		h.App.Logger().Error("NoteHandler.Patch bind err", zap.Error(err))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	user := pkgapp.GetUser(c)
	ctx := c.Request.Context()

	if err := h.App.NoteService.Patch(ctx, user, id, params); err != nil {
		h.logError(ctx, "NoteHandler.Patch", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContent()
}

// Delete removes an owned note.
// DELETE /api/notes/:id -> 204, 404 when missing.
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := noteID(c)
	if !ok {
		response.ToResponse(code.ErrorNoteNotFound)
		return
	}

	user := pkgapp.GetUser(c)
	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, user, id); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContent()
}
