package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/pkg/apperror"
)

const bearerPrefix = "Bearer "

type TokenParser interface {
	Parse(token string) (models.Actor, error)
}

// Auth requires Authorization: Bearer <token> and stores the actor on the
// context.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if !strings.HasPrefix(raw, bearerPrefix) {
			c.AbortWithStatusJSON(apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.ToHTTPError())
			return
		}

		actor, err := parser.Parse(strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix)))
		if err != nil {
			c.AbortWithStatusJSON(apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextKeyActor, actor)
		c.Next()
	}
}
