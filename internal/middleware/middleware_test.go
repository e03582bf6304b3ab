package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gitops-manager/internal/middleware"
	pkgLog "gitops-manager/pkg/log"
)

func setup() (*gin.Engine, middleware.Middleware) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(pkgLog.NewNopLogger())
	r := gin.New()
	return r, mw
}

func TestRequestID(t *testing.T) {
	t.Run("generates id when absent", func(t *testing.T) {
		r, mw := setup()
		r.Use(mw.RequestID())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		id := w.Header().Get(middleware.HeaderXRequestID)
		if len(id) != 36 {
			t.Errorf("expected a UUID request id, got %q", id)
		}
	})

	t.Run("honors caller-supplied id", func(t *testing.T) {
		r, mw := setup()
		r.Use(mw.RequestID())
		r.GET("/", func(c *gin.Context) {
			if c.GetString(middleware.ContextKeyRequestID) != "my-trace-id" {
				t.Errorf("request id missing from context")
			}
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(middleware.HeaderXRequestID, "my-trace-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get(middleware.HeaderXRequestID) != "my-trace-id" {
			t.Errorf("caller id not echoed")
		}
	})
}

func TestCORS(t *testing.T) {
	t.Run("sets headers", func(t *testing.T) {
		r, mw := setup()
		r.Use(mw.CORS())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("CORS origin header missing")
		}
	})

	t.Run("short-circuits preflight", func(t *testing.T) {
		r, mw := setup()
		r.Use(mw.CORS())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 for preflight, got %d", w.Code)
		}
	})
}
