package handler

import (
	"errors"

	"secure_vault/internal/middleware"
	"secure_vault/internal/model"

	"github.com/gin-gonic/gin"
)

// getAuthIdentity pulls the verified identity set by the JWT middleware
func getAuthIdentity(c *gin.Context) (model.Identity, error) {
	identityVal, exists := c.Get(middleware.AuthIdentityKey)
	if !exists {
		return model.Identity{}, errors.New("identity not found in context")
	}
	identity, ok := identityVal.(model.Identity)
	if !ok {
		return model.Identity{}, errors.New("invalid identity type in context")
	}
	return identity, nil
}
