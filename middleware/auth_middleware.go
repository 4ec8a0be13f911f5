package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
)

const ContextUserIDKey = "userID"

// publicPaths stay reachable without a token: health probes and artifact
// downloads linked from already-delivered responses.
var publicPaths = map[string]struct{}{
	"/health":        {},
	"/download_file": {},
}

type AuthHandler interface {
	AuthMiddleware() gin.HandlerFunc
}

type authHandler struct {
	logger outbound.LoggerPort
	jwks   *keyfunc.JWKS
}

// NewAuthHandler fetches the JWKS for bearer-token validation. Auth is
// optional infrastructure; callers only construct it when a JWKS URL is
// configured.
func NewAuthHandler(jwksURL string, logger outbound.LoggerPort) (AuthHandler, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			logger.Error(err, "failed to refresh JWKS")
		},
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, err
	}

	return &authHandler{logger: logger, jwks: jwks}, nil
}

func (h *authHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := publicPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		var claims jwt.RegisteredClaims
		token, err := jwt.ParseWithClaims(tokenString, &claims, h.jwks.Keyfunc)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Next()
	}
}
