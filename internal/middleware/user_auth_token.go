package middleware

import (
	"strings"

	"github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// UserAuthWithConfig is the auth gate. A request without any credential is
// rejected with 401 before the handler runs. A present credential always
// passes; the middleware resolves it to an identity:
//   - a token signed by this service yields the verified user claim
//   - anything else is taken verbatim as the asserted identity
//
// The identity is stored in the gin context for the handlers.
func UserAuthWithConfig(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		response := app.NewResponse(c)

		if s, exist := c.GetQuery("authorization"); exist {
			token = s
		} else if s, exist := c.GetQuery("Authorization"); exist {
			token = s
		} else if s := c.GetHeader("authorization"); len(s) != 0 {
			token = s
		} else if s := c.GetHeader("Authorization"); len(s) != 0 {
			token = s
		} else if s, exist := c.GetQuery("token"); exist {
			token = s
		} else if s := c.GetHeader("token"); len(s) != 0 {
			token = s
		}

		if token == "" {
			response.ToResponse(code.ErrorNotAuthToken)
			c.Abort()
			return
		}

		token = strings.TrimPrefix(token, "Bearer ")

		identity := token
		if user, err := app.ParseTokenWithKey(token, secretKey); err == nil && user.User != "" {
			identity = user.User
		}

		c.Set(app.IdentityKey, identity)
		c.Next()
	}
}
