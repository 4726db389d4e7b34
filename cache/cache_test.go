package cache

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chTempDir(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestGetCachePath_SameSlugSamePath(t *testing.T) {
	a := GetCachePath("abc1234567")
	b := GetCachePath("abc1234567")
	c := GetCachePath("xyz7654321")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "abc1234567")
}

func TestWriteReadClear(t *testing.T) {
	chTempDir(t)

	_, found := Read("someslug01", time.Hour)
	assert.False(t, found)

	require.NoError(t, Write("someslug01", "<html>cached</html>"))

	html, found := Read("someslug01", time.Hour)
	assert.True(t, found)
	assert.Equal(t, "<html>cached</html>", html)

	require.NoError(t, ClearPortfolio("someslug01"))

	_, found = Read("someslug01", time.Hour)
	assert.False(t, found)

	// Clearing an absent entry is not an error.
	assert.NoError(t, ClearPortfolio("someslug01"))
}

func TestRead_ExpiredEntry(t *testing.T) {
	chTempDir(t)

	require.NoError(t, Write("staleslug01", "<html>old</html>"))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(GetCachePath("staleslug01"), old, old))

	_, found := Read("staleslug01", 10*time.Minute)
	assert.False(t, found)
}

func TestClearOldCache(t *testing.T) {
	chTempDir(t)

	require.NoError(t, Write("oldslug0001", "<html>old</html>"))
	require.NoError(t, Write("newslug0001", "<html>new</html>"))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(GetCachePath("oldslug0001"), old, old))

	require.NoError(t, ClearOldCache(time.Hour))

	_, found := Read("oldslug0001", 24*time.Hour)
	assert.False(t, found)
	_, found = Read("newslug0001", 24*time.Hour)
	assert.True(t, found)
}

func TestMiddleware_CachesPublicPagesOnly(t *testing.T) {
	chTempDir(t)
	gin.SetMode(gin.TestMode)

	hits := 0
	router := gin.New()
	router.Use(Middleware(time.Hour, nil))
	router.GET("/p/:slug", func(c *gin.Context) {
		hits++
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<html>page</html>"))
	})
	router.GET("/other", func(c *gin.Context) {
		hits++
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<html>other</html>"))
	})

	get := func(path string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := get("/p/cachemeslug")
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, hits)

	second := get("/p/cachemeslug")
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, "<html>page</html>", second.Body.String())
	assert.Equal(t, 1, hits, "cached responses skip the handler")

	get("/other")
	get("/other")
	assert.Equal(t, 3, hits, "non-portfolio paths are never cached")
}

func TestMiddleware_HitCallbackRunsOnCachedServes(t *testing.T) {
	chTempDir(t)
	gin.SetMode(gin.TestMode)

	var hitSlugs []string
	router := gin.New()
	router.Use(Middleware(time.Hour, func(c *gin.Context, slug string) {
		hitSlugs = append(hitSlugs, slug)
	}))
	router.GET("/p/:slug", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<html>page</html>"))
	})

	get := func(path string) {
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	get("/p/trackedslug")
	assert.Empty(t, hitSlugs, "a MISS goes through the handler, not the callback")

	get("/p/trackedslug")
	get("/p/trackedslug")
	assert.Equal(t, []string{"trackedslug", "trackedslug"}, hitSlugs)
}

func TestMiddleware_DoesNotCacheErrors(t *testing.T) {
	chTempDir(t)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware(time.Hour, nil))
	router.GET("/p/:slug", func(c *gin.Context) {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<html>missing</html>"))
	})

	req, _ := http.NewRequest("GET", "/p/missingpage", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	_, found := Read("missingpage", time.Hour)
	assert.False(t, found, "error pages stay out of the cache")
}
