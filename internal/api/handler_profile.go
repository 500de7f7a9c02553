package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"laundry-booking-backend/internal/model"
	"laundry-booking-backend/internal/mw"
)

type putProfileRequest struct {
	DisplayName string `json:"displayName"`
	Apartment   string `json:"apartment"`
}

// PutProfile handles PUT /api/profile. Creating the profile is a gateway
// responsibility; the engines only ever read it.
func (h *Handler) PutProfile(c *gin.Context) {
	var req putProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.DisplayName) == "" || strings.TrimSpace(req.Apartment) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "displayName and apartment are required"})
		return
	}

	profile := &model.UserProfile{
		UID:         mw.Identity(c).UID,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Apartment:   strings.TrimSpace(req.Apartment),
	}
	if err := h.store.PutProfile(c.Request.Context(), profile); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}
