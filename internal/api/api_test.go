package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"laundry-booking-backend/config"
	"laundry-booking-backend/internal/db"
	"laundry-booking-backend/internal/mw"
	"laundry-booking-backend/internal/slotcal"
	"laundry-booking-backend/internal/store"
)

const testGatewaySecret = "test-gateway-secret"

// newTestRouter wires a full router over a private in-memory database.
func newTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(testDB))

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Server.RateLimitPerSec = 1000
	cfg.Server.RateLimitBurst = 1000
	cfg.Auth.JWTSecret = testGatewaySecret
	cfg.Auth.AdminUIDs = []string{"manager"}

	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	require.NoError(t, err)
	machines := make([]slotcal.Machine, len(cfg.Booking.Machines))
	for i, m := range cfg.Booking.Machines {
		machines[i] = slotcal.Machine{ID: m.ID, DisplayName: m.DisplayName, Kind: m.Kind}
	}
	cal := slotcal.New(machines, loc, cfg.Booking.GraceWindow)

	s := store.NewGormStore(testDB)
	router := NewRouter(cfg, s, cal, &webpush.Options{VAPIDPublicKey: "test-public-key"})
	return router, s
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// issueTestToken signs a token directly, bypassing the token endpoint.
func issueTestToken(t *testing.T, uid string, admin bool) string {
	t.Helper()
	token, err := mw.IssueToken([]byte(testGatewaySecret), uid, admin, time.Hour)
	require.NoError(t, err)
	return token
}
