package middleware

import (
	"github.com/gin-gonic/gin"
)

// AppInfoWithConfig stashes the service name and version for handlers.
func AppInfoWithConfig(name string, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)

		c.Next()
	}
}
