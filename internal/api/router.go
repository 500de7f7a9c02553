package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"laundry-booking-backend/config"
	"laundry-booking-backend/internal/mw"
	"laundry-booking-backend/internal/slotcal"
	"laundry-booking-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, s store.Store, cal *slotcal.Calendar, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(cfg, s, cal, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	auth := mw.Auth([]byte(cfg.Auth.JWTSecret))

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Public reads. Announcements tolerate the cache TTL; the
		// reservation grid is always served fresh.
		api.GET("/announcements", caching, handler.GetAnnouncements)
		api.GET("/reservations", handler.GetReservations)
		api.GET("/reports", handler.GetOpenReports)
		api.GET("/machines", handler.GetMachines)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		// The building gateway exchanges its shared secret for tenant tokens.
		api.POST("/token", handler.IssueToken)

		authed := api.Group("")
		authed.Use(auth)
		{
			authed.PUT("/profile", handler.PutProfile)
			authed.POST("/reservations", handler.CreateReservation)
			authed.DELETE("/reservations/:slotId", handler.CancelReservation)
			authed.POST("/reservations/:slotId/complete", handler.CompleteReservation)
			authed.POST("/reports", handler.CreateReport)
			authed.POST("/reports/:id/resolve", handler.ResolveReport)
			authed.POST("/announcements", handler.CreateAnnouncement)

			authed.GET("/subscriptions", handler.GetSubscription)
			authed.PUT("/subscriptions", handler.PutSubscription)
			authed.DELETE("/subscriptions", handler.DeleteSubscription)
		}
	}

	return r
}
