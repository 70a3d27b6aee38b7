package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_CountsRequestsByRoute(t *testing.T) {
	r := gin.New()
	r.Use(Middleware())

	var seenRoute string
	r.GET("/api/vehicles/:id", func(c *gin.Context) {
		seenRoute = routeFromContext(c.Request.Context())
		c.Status(http.StatusInternalServerError)
	})

	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/abc", http.NoBody)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seenRoute != "/api/vehicles/:id" {
		t.Errorf("route label = %q, want the route template", seenRoute)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	want := `autoledger_http_errors_total{method="GET",route="/api/vehicles/:id",status="500"}`
	if !strings.Contains(rec.Body.String(), want) {
		t.Errorf("expected %s in exposition", want)
	}
}

func TestObserveDBLatency_UnknownRoute(t *testing.T) {
	if got := routeFromContext(context.Background()); got != "unknown" {
		t.Errorf("routeFromContext = %q", got)
	}
	ObserveDBLatency(context.Background(), "find", time.Now())
}

func TestHandler_ServesExposition(t *testing.T) {
	AddRepaired("vehicles", 2)

	r := gin.New()
	r.GET("/metrics", Handler())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "autoledger_repaired_records_total") {
		t.Error("expected repaired counter in exposition")
	}
}
