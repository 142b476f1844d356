package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"casework/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (v stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return v.claims, v.err
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var actor string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = requestcontext.Actor(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	serve := func(v JWTValidator, header string, authorities ...string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		RequireAuth(v, logger, authorities...)(next).ServeHTTP(rr, req)
		return rr
	}

	t.Run("missing header is unauthorized", func(t *testing.T) {
		rr := serve(stubValidator{}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		rr := serve(stubValidator{err: errors.New("bad")}, "Bearer x")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid or expired token")
	})

	t.Run("valid token sets the actor", func(t *testing.T) {
		rr := serve(stubValidator{claims: &JWTClaims{Actor: "officer.jones"}}, "Bearer x")
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "officer.jones", actor)
	})

	t.Run("missing authority is forbidden", func(t *testing.T) {
		v := stubValidator{claims: &JWTClaims{Actor: "officer.jones", Authorities: []string{"ROLE_READ"}}}
		rr := serve(v, "Bearer x", "ROLE_CUSTODY_UPDATE")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("any listed authority is enough", func(t *testing.T) {
		v := stubValidator{claims: &JWTClaims{Actor: "officer.jones", Authorities: []string{"ROLE_READ", "ROLE_CUSTODY_UPDATE"}}}
		rr := serve(v, "Bearer x", "ROLE_ADMIN", "ROLE_CUSTODY_UPDATE")
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
