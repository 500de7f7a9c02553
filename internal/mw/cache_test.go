package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestCacheServesSecondReadFromMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var hits int
	store := cache.New(time.Minute, time.Minute)
	r := gin.New()
	r.GET("/list", Cache(store, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	r.GET("/fail", Cache(store, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		r.ServeHTTP(w, req)
		return w
	}

	first := get("/list")
	assert.Equal(t, http.StatusOK, first.Code)
	second := get("/list")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String(), "second read should come from the cache")
	assert.Equal(t, 1, hits)

	// Error responses are never cached.
	hits = 0
	get("/fail")
	get("/fail")
	assert.Equal(t, 2, hits)
}
