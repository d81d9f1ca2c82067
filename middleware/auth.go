package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "roomdesk/database/repository/user"
	"roomdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates requests with a Bearer token. The token
// hash is checked against the auth cache first; on a miss the user record
// is loaded and the cache repopulated, so a Redis flush does not sign
// everyone out.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, email, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID
		authCache := utils.GetAuthCacheClient()

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			c.Set("userID", userID)
			c.Set("userEmail", email)
			c.Next()
			return
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("Auth cache lookup failed, falling back to DB", zap.Error(err))
		}

		// Cache miss: confirm the account still exists, then repopulate.
		usr, dbErr := users.GetByID(ctx, userID)
		if dbErr != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if err := authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to repopulate auth cache", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Set("userEmail", usr.Email)
		c.Next()
	}
}
