package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/safar/freight-quotes/internal/models"
)

const (
	ContextKeyRequestID = "request_id"
	ContextKeyActor     = "actor"
)

// ActorFrom returns the authenticated actor set by Auth.
func ActorFrom(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(ContextKeyActor)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
