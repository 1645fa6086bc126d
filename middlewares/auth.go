package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"holidayapi/models"
	"holidayapi/response"
	"holidayapi/services"
)

const (
	// TokenCookie là tên cookie chứa access token khi client không gửi header Authorization
	TokenCookie = "token"

	claimsKey = "auth.claims"
	userKey   = "auth.user"
)

type TokenParser interface {
	ParseToken(ctx context.Context, tokenString string) (*services.Claims, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (models.User, error)
}

// Authenticated lets a request through only with a valid, unrevoked token of an
// existing user. Otherwise it aborts with 401 before any handler runs.
func Authenticated(tokens TokenParser, users UserFinder, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			return
		}

		claims, err := tokens.ParseToken(c.Request.Context(), tokenString)
		if err != nil {
			log.Debug("rejected token", zap.Error(err))
			response.Unauthorized(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Debug("token user not found", zap.Uint("user_id", claims.UserID), zap.Error(err))
			response.Unauthorized(c)
			return
		}

		c.Set(claimsKey, claims)
		c.Set(userKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

func CurrentClaims(c *gin.Context) (*services.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.Claims)
	return claims, ok
}

func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
