package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"laundry-booking-backend/internal/mw"
)

type issueTokenRequest struct {
	UID    string `json:"uid" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// IssueToken handles POST /api/token. The building's entry gateway, which
// has already verified the tenant, exchanges the shared secret for a signed
// token carrying the tenant's identity.
func (h *Handler) IssueToken(c *gin.Context) {
	var req issueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.cfg.Auth.JWTSecret)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid gateway secret"})
		return
	}

	admin := false
	for _, uid := range h.cfg.Auth.AdminUIDs {
		if uid == req.UID {
			admin = true
			break
		}
	}

	ttl := time.Duration(h.cfg.Auth.TokenTTLMinutes) * time.Minute
	token, err := mw.IssueToken([]byte(h.cfg.Auth.JWTSecret), req.UID, admin, ttl)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}
