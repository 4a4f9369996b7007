// Package api_router provides the HTTP API route handlers.
package api_router

import (
	"context"

	"github.com/haierkeys/simple-notes-service/internal/app"
	"github.com/haierkeys/simple-notes-service/internal/middleware"
	"github.com/haierkeys/simple-notes-service/pkg/logger"

	"go.uber.org/zap"
)

// Handler is the base handler embedding the App container. All API
// handlers embed it for dependency injection.
type Handler struct {
	App *app.App
}

// NewHandler creates a base Handler.
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError logs a handler error together with the request trace id.
func (h *Handler) logError(ctx context.Context, method string, err error) {
	h.App.Logger().Error(method,
		zap.String(logger.FieldTraceID, middleware.GetTraceID(ctx)),
		zap.Error(err),
	)
}
