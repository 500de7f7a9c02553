package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationEndpointsRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/reservations"},
		{"DELETE", "/api/reservations/some-slot"},
		{"POST", "/api/reservations/some-slot/complete"},
		{"PUT", "/api/profile"},
		{"POST", "/api/reports"},
	}
	for _, tc := range testCases {
		w := doJSON(t, router, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s without token", tc.method, tc.path)
	}
}

func TestCreateReservationValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := issueTestToken(t, "user-a", false)

	w := doJSON(t, router, "PUT", "/api/profile", token, map[string]string{
		"displayName": "Ana", "apartment": "4B",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("empty body", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/reservations", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing date", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/reservations", token, map[string]string{
			"timeRange": "10:00 - 12:00", "machineId": "lavarropas-1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "date is required")
	})

	t.Run("unknown machine", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/reservations", token, map[string]string{
			"date": "2024-05-01", "timeRange": "10:00 - 12:00", "machineId": "dishwasher-9",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateReservationWithoutProfile(t *testing.T) {
	router, _ := newTestRouter(t)
	token := issueTestToken(t, "no-profile", false)

	w := doJSON(t, router, "POST", "/api/reservations", token, map[string]string{
		"date": "2024-05-01", "timeRange": "10:00 - 12:00", "machineId": "lavarropas-1",
	})
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
}

func TestGetReservationsRequiresDate(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/reservations", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/api/reservations?date=garbage", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/api/reservations?date=2024-05-01", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var grid map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	assert.Empty(t, grid)
}

func TestGetMachines(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/machines", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var machines []struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Kind        string `json:"kind"`
		Status      string `json:"status"`
		CurrentSlot string `json:"currentSlot"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &machines))
	require.Len(t, machines, 4)

	for _, m := range machines {
		assert.NotEmpty(t, m.DisplayName)
		assert.Contains(t, []string{"washer", "dryer"}, m.Kind)
		// Empty database, so nothing is in use or faulty.
		assert.Equal(t, "available", m.Status)
		assert.NotEmpty(t, m.CurrentSlot)
	}
}

func TestGetVAPIDPublicKey(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/vapid_public_key", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"public_key":"test-public-key"}`, w.Body.String())
}
