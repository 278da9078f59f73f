package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agroconsult/internal/pkg/jwt"
	"agroconsult/internal/pkg/response"
)

const (
	actorKey    = "actor"
	ActorHeader = "X-Actor"
)

// Actor resolves the caller identity: a valid Bearer token wins, then the
// X-Actor header, then fallback. A malformed or invalid token is rejected
// rather than ignored.
func Actor(tokens *jwt.Service, fallback string) gin.HandlerFunc {
	fallback = strings.TrimSpace(fallback)

	return func(c *gin.Context) {
		if h := c.GetHeader("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				response.Error(c, http.StatusUnauthorized, "Invalid Authorization header")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				response.Error(c, http.StatusUnauthorized, "Invalid token")
				return
			}

			c.Set(actorKey, claims.Actor())
			c.Next()
			return
		}

		if actor := strings.TrimSpace(c.GetHeader(ActorHeader)); actor != "" {
			c.Set(actorKey, actor)
		} else if fallback != "" {
			c.Set(actorKey, fallback)
		}

		c.Next()
	}
}

// RequireActor rejects requests without a resolved caller identity.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetActor(c) == "" {
			response.Error(c, http.StatusUnauthorized, "Caller identity required")
			return
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) string {
	return c.GetString(actorKey)
}
