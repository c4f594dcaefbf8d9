package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/LourceDev/3pages/internal/model"
	"github.com/LourceDev/3pages/internal/pkg/jwt"
	"github.com/LourceDev/3pages/internal/pkg/response"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// UserSource resolves a token's user id to a live account.
type UserSource interface {
	GetByID(ctx context.Context, userID int64) (*model.User, error)
}

// JWTAuth gates protected routes. Missing, malformed, or expired tokens and
// tokens for users that no longer exist are all rejected with the same 401;
// no distinction leaks to the client. Resolved users are cached in an
// expiring LRU so hot sessions do not hit the database on every request.
func JWTAuth(secret []byte, users UserSource, cacheSize int, cacheTTL time.Duration) gin.HandlerFunc {
	var cache *expirable.LRU[int64, *model.User]
	if cacheSize > 0 && cacheTTL > 0 {
		cache = expirable.NewLRU[int64, *model.User](cacheSize, nil, cacheTTL)
	}
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
			c.Abort()
			return
		}
		userID, err := jwt.ParseToken(token, secret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
			c.Abort()
			return
		}
		user, found := (*model.User)(nil), false
		if cache != nil {
			user, found = cache.Get(userID)
		}
		if !found {
			user, err = users.GetByID(c.Request.Context(), userID)
			if err != nil {
				response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
				c.Abort()
				return
			}
			if cache != nil {
				cache.Add(userID, user)
			}
		}
		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
