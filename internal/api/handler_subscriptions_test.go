package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	tokenA := issueTestToken(t, "user-a", false)
	tokenB := issueTestToken(t, "user-b", false)

	sub := map[string]string{
		"endpoint": "https://push.example.com/abc",
		"p256dh":   "key",
		"auth":     "auth",
	}

	w := doJSON(t, router, "PUT", "/api/subscriptions", "", sub)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "PUT", "/api/subscriptions", tokenA, map[string]string{"endpoint": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "PUT", "/api/subscriptions", tokenA, sub)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/subscriptions", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"endpoints":["https://push.example.com/abc"]}`, w.Body.String())

	// Another tenant cannot delete someone else's endpoint.
	w = doJSON(t, router, "DELETE", "/api/subscriptions", tokenB, map[string]string{"endpoint": sub["endpoint"]})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "DELETE", "/api/subscriptions", tokenA, map[string]string{"endpoint": sub["endpoint"]})
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Deleting an unknown endpoint is a quiet success.
	w = doJSON(t, router, "DELETE", "/api/subscriptions", tokenA, map[string]string{"endpoint": sub["endpoint"]})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, "GET", "/api/subscriptions", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"endpoints":[]}`, w.Body.String())
}
