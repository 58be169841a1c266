package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive-backend/models"
	"hive-backend/utils"
)

const (
	CtxActorID         = "actorId"
	CtxEstablishmentID = "establishmentId"
	CtxRole            = "role"
)

// TokenCookie is the session cookie set at login.
const TokenCookie = "token"

func authenticate(c *gin.Context, wantRole string) (*utils.Claims, bool) {
	tokenStr, err := c.Cookie(TokenCookie)
	if err != nil || tokenStr == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false, "error": "unauthorized - no token provided",
		})
		return nil, false
	}

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false, "error": "unauthorized - invalid token",
		})
		return nil, false
	}
	if claims.Role != wantRole {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false, "error": "forbidden",
		})
		return nil, false
	}
	return claims, true
}

// RequireAdmin gates admin-surface routes and stashes the actor's identity
// and establishment scope on the context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, models.ActorAdmin)
		if !ok {
			return
		}
		c.Set(CtxActorID, claims.ActorID)
		c.Set(CtxEstablishmentID, claims.EstablishmentID)
		c.Set(CtxRole, models.ActorAdmin)
		c.Next()
	}
}

// RequireTenant gates tenant-surface routes.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, models.ActorTenant)
		if !ok {
			return
		}
		c.Set(CtxActorID, claims.ActorID)
		c.Set(CtxEstablishmentID, claims.EstablishmentID)
		c.Set(CtxRole, models.ActorTenant)
		c.Next()
	}
}

// ActorID returns the authenticated actor's id from the context.
func ActorID(c *gin.Context) uint {
	if v, ok := c.Get(CtxActorID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}

// EstablishmentID returns the authenticated actor's establishment scope.
func EstablishmentID(c *gin.Context) uint {
	if v, ok := c.Get(CtxEstablishmentID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}
