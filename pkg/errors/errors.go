// Package errors maps service errors onto HTTP responses.
package errors

import (
	"errors"

	"github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the response for an error returned by the service
// layer. Registered codes are served with their own HTTP status; anything
// else is an internal error.
func ErrorResponse(c *gin.Context, err error) {
	response := app.NewResponse(c)

	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		response.ToResponse(codeErr)
		return
	}

	response.ToResponse(code.ErrorServerInternal.WithDetails(err.Error()))
}
