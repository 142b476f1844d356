package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	custodyhandler "casework/internal/custody/handler"
	"casework/internal/featureswitch"
	switchhandler "casework/internal/featureswitch/handler"
	jwttoken "casework/internal/jwt_token"
	"casework/internal/platform/config"
	"casework/internal/platform/metrics"
	"casework/pkg/platform/middleware/admin"
	"casework/pkg/platform/middleware/request"
	"casework/pkg/testutil"
)

func newTestRouter(t *testing.T, checks ...healthCheck) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	switches, err := featureswitch.New(config.Features{}, featureswitch.NewMemoryStore())
	if err != nil {
		t.Fatalf("feature switches: %v", err)
	}
	validator := jwttoken.NewValidator(jwttoken.NewJWTService("test-key", ""))
	return newRouter(log, metrics.NewWithRegisterer(prometheus.NewRegistry()), health(log, checks...),
		custodyhandler.New(nil, nil, validator, log),
		switchhandler.New(switches, admin.Token("admin"), log),
	)
}

func TestRouterScaffold(t *testing.T) {
	testutil.Given(t, "the HTTP router", func(t *testing.T) {
		router := newTestRouter(t, healthCheck{"postgres", func(context.Context) error { return nil }})

		testutil.When(t, "calling GET /health", func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			testutil.Then(t, "it reports every dependency and echoes a request id", func(t *testing.T) {
				if rec.Code != http.StatusOK {
					t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
				}
				testutil.AssertJSONContains(t, rec, "postgres", "ok")
				if rec.Header().Get(request.HeaderRequestID) == "" {
					t.Fatalf("expected %s header", request.HeaderRequestID)
				}
			})
		})

		testutil.When(t, "calling a custody route without a token", func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secure/offenders/nomsNumber/G1234AB/custody/bookingNumber/44463B", nil))

			testutil.Then(t, "it should respond with unauthorized", func(t *testing.T) {
				if rec.Code != http.StatusUnauthorized {
					t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
				}
			})
		})

		testutil.When(t, "calling the feature switch admin routes with the token", func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/feature-switches/custody-update", nil)
			req.Header.Set(admin.HeaderAdminToken, "admin")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			testutil.Then(t, "it should respond with the switch", func(t *testing.T) {
				if rec.Code != http.StatusOK {
					t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
				}
			})
		})

		testutil.When(t, "calling GET /metrics", func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			testutil.Then(t, "it should serve the prometheus exposition", func(t *testing.T) {
				if rec.Code != http.StatusOK {
					t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
				}
			})
		})
	})
}

func TestHealthReportsFailingDependency(t *testing.T) {
	router := newTestRouter(t,
		healthCheck{"postgres", func(context.Context) error { return nil }},
		healthCheck{"redis", func(context.Context) error { return errors.New("refused") }},
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	body := testutil.UnmarshalResponse[map[string]string](t, rec)
	if (*body)["redis"] != "down" || (*body)["postgres"] != "ok" {
		t.Fatalf("unexpected health body %v", *body)
	}
}
