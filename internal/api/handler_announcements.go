package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"laundry-booking-backend/internal/model"
	"laundry-booking-backend/internal/mw"
)

const announcementLimit = 20

// GetAnnouncements handles GET /api/announcements: the newest notices first,
// capped at twenty. A fetch failure degrades to an empty list instead of an
// error page; announcements are a low-priority feature and the grid should
// still load.
func (h *Handler) GetAnnouncements(c *gin.Context) {
	list, err := h.store.Announcements(c.Request.Context(), announcementLimit)
	if err != nil {
		log.Printf("Error listing announcements: %v", err)
		c.JSON(http.StatusOK, []model.Announcement{})
		return
	}
	if list == nil {
		list = []model.Announcement{}
	}
	c.JSON(http.StatusOK, list)
}

type createAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CreateAnnouncement handles POST /api/announcements. Admin only.
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	if !mw.Identity(c).Admin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you do not have permission to do that"})
		return
	}

	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "title and body are required"})
		return
	}

	a := &model.Announcement{
		Title:     strings.TrimSpace(req.Title),
		Body:      strings.TrimSpace(req.Body),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateAnnouncement(c.Request.Context(), a); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to create announcement"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "announcement": a})
}
