package mw

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"laundry-booking-backend/internal/engine"
)

const identityKey = "verifiedIdentity"

// Claims extends standard registered claims with the admin flag the report
// workflow needs.
type Claims struct {
	UID   string `json:"uid"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed JWT for a verified user id.
func IssueToken(secret []byte, uid string, admin bool, ttl time.Duration) (string, error) {
	claims := Claims{
		UID:   uid,
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates a token string and returns its claims.
func ParseToken(secret []byte, token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Auth requires a valid Bearer token and stores the verified identity in the
// request context for the handlers.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		claims, err := ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(identityKey, engine.Identity{UID: claims.UID, Admin: claims.Admin})
		c.Next()
	}
}

// Identity returns the verified identity placed by Auth, or the zero
// identity on unauthenticated routes.
func Identity(c *gin.Context) engine.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return engine.Identity{}
	}
	id, ok := v.(engine.Identity)
	if !ok {
		return engine.Identity{}
	}
	return id
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
