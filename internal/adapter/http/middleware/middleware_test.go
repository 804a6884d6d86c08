package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dayplanner/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLanguageMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/lang", middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetLang(c))
	})

	for header, want := range map[string]string{
		"":                         "en",
		"zh-CN":                    "zh",
		"zh-TW,zh;q=0.9,en;q=0.8": "zh",
		"fr-CA":                    "fr",
		"de-DE,fr;q=0.5":           "fr",
		"ja":                       "en",
		"not a header;;":           "en",
	} {
		req := httptest.NewRequest(http.MethodGet, "/lang", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, want, rec.Body.String())
	}
}

func TestGinZapMiddleware_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)
	router := gin.New()
	router.Use(middleware.GinZapMiddleware(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok?date=2024-06-01", "/bad", "/boom"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, "date=2024-06-01", entries[0].ContextMap()["query"])
	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, zap.ErrorLevel, entries[2].Level)
}
