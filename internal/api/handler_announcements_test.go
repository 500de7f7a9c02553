package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry-booking-backend/internal/model"
)

func TestGetAnnouncementsEmpty(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/announcements", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetAnnouncementsCapAndOrder(t *testing.T) {
	router, s := newTestRouter(t)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		err := s.CreateAnnouncement(context.Background(), &model.Announcement{
			Title:     fmt.Sprintf("Aviso %d", i),
			Body:      "cuerpo",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	w := doJSON(t, router, "GET", "/api/announcements", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 20)
	assert.Equal(t, "Aviso 24", list[0].Title)
	assert.Equal(t, "Aviso 5", list[19].Title)
}

func TestCreateAnnouncement(t *testing.T) {
	router, _ := newTestRouter(t)
	tenant := issueTestToken(t, "user-a", false)
	admin := issueTestToken(t, "manager", true)

	body := map[string]string{"title": "Corte de agua", "body": "El jueves de 9 a 12."}

	w := doJSON(t, router, "POST", "/api/announcements", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "POST", "/api/announcements", tenant, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "POST", "/api/announcements", admin, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/api/announcements", admin, map[string]string{"title": " ", "body": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
