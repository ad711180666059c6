package middleware

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"gamediary/config"
	"gamediary/database"
	"gamediary/metrics"
	"gamediary/models"
	"gamediary/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const (
	// UserCacheKeyPrefix prefixes the Redis keys of cached user sessions
	UserCacheKeyPrefix = "user_session:"
	// UserCacheTTL bounds how long a cached session survives without a write
	UserCacheTTL = 15 * time.Minute

	userIDContextKey = "userID"
)

// GenerateToken issues a signed JWT for the given user
func GenerateToken(user *models.User, lifetime time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// AuthenticatedUserID returns the user id carried by a valid session
// token on the request, when one is present. Used by endpoints that
// only anonymous callers may reach.
func AuthenticatedUserID(c *gin.Context) (uint, bool) {
	token := tokenFromRequest(c)
	if token == "" {
		return 0, false
	}
	userID, err := parseToken(token)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// AuthMiddleware validates the auth token from the cookie or the
// Authorization header and stores the acting user id on the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		userID, err := parseToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// GetUserFromRequest resolves the acting user of an authenticated
// request, from the Redis session cache when possible, from the
// database otherwise. On failure the error response has already been
// written; callers just return.
func GetUserFromRequest(c *gin.Context) (models.User, error) {
	userID, exists := c.Get(userIDContextKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, "No authenticated user")
		c.Abort()
		return models.User{}, errors.New("no authenticated user in context")
	}
	id := userID.(uint)

	var user models.User
	cacheKey := UserCacheKeyPrefix + strconv.FormatUint(uint64(id), 10)
	cached, err := database.REDIS.Get(c, cacheKey).Result()
	if err == nil {
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			metrics.SessionCacheHits.Inc()
			return user, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Session cache read failed: %v", err)
	}
	metrics.SessionCacheMisses.Inc()

	if err := database.DB.Preload("Profile").First(&user, "id = ?", id).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, "User not found")
		c.Abort()
		return models.User{}, err
	}

	if payload, err := json.Marshal(user); err == nil {
		if err := database.REDIS.Set(c, cacheKey, payload, UserCacheTTL).Err(); err != nil {
			log.Printf("Session cache write failed: %v", err)
		}
	}

	return user, nil
}

// InvalidateUserCache drops a user's cached session after profile or
// privacy mutations
func InvalidateUserCache(c *gin.Context, userID uint) {
	cacheKey := UserCacheKeyPrefix + strconv.FormatUint(uint64(userID), 10)
	if err := database.REDIS.Del(c, cacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate user session cache: %v", err)
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	return ""
}

func parseToken(token string) (uint, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, errors.New("invalid subject")
	}
	return uint(id), nil
}
