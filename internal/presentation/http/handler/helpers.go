package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/middleware"
)

// GetActor extracts the authenticated actor from the Gin context.
func GetActor(c *gin.Context) (entity.Actor, bool) {
	actorVal, exists := c.Get(middleware.ActorKey)
	if !exists {
		return entity.Actor{}, false
	}
	actor, ok := actorVal.(entity.Actor)
	if !ok {
		return entity.Actor{}, false
	}
	return actor, true
}
