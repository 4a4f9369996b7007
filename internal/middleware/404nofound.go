package middleware

import (
	"github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound handles routes outside the route table.
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToResponse(code.ErrorNotFoundAPI)
		c.Abort()
	}
}
