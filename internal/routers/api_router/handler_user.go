package api_router

import (
	"github.com/gin-gonic/gin"
	"github.com/haierkeys/simple-notes-service/internal/app"
	"github.com/haierkeys/simple-notes-service/internal/dto"
	pkgapp "github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"
	apperrors "github.com/haierkeys/simple-notes-service/pkg/errors"
	"go.uber.org/zap"
)

// UserHandler handles the user routes.
type UserHandler struct {
	*Handler
}

// NewUserHandler creates a UserHandler instance.
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// IssueToken hands out a signed token for the asserted identity.
// POST /api/user/token, body {user} -> 200 with {user, token}.
func (h *UserHandler) IssueToken(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TokenRequest{}

	if err := c.ShouldBindJSON(params); err != nil {
		h.App.Logger().Error("UserHandler.IssueToken bind err", zap.Error(err))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	ctx := c.Request.Context()

	token, err := h.App.UserService.IssueToken(ctx, params, pkgapp.GetRequestIP(c))
	if err != nil {
		h.logError(ctx, "UserHandler.IssueToken", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(token))
}
