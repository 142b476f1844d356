// Package admin guards the operator endpoints that flip runtime switches.
package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/httputil"
	request "casework/pkg/platform/middleware/request"
)

// HeaderAdminToken carries the shared operator secret.
const HeaderAdminToken = "X-Admin-Token"

// Verifier reports whether a presented admin token is accepted.
type Verifier func(given string) bool

// Token accepts exactly expected. An empty expected token accepts nothing.
func Token(expected string) Verifier {
	return func(given string) bool {
		if expected == "" {
			return false
		}
		return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
	}
}

// BcryptHash accepts tokens matching a bcrypt hash, so the plaintext never
// sits in configuration. An empty hash accepts nothing.
func BcryptHash(hash string) Verifier {
	return func(given string) bool {
		if hash == "" || given == "" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(given)) == nil
	}
}

// FromConfig prefers the hash when both are configured.
func FromConfig(token, hash string) Verifier {
	if hash != "" {
		return BcryptHash(hash)
	}
	return Token(token)
}

// RequireAdminToken rejects requests whose token the verifier refuses.
func RequireAdminToken(verify Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verify(r.Header.Get(HeaderAdminToken)) {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin token rejected",
					"request_id", request.GetRequestID(ctx),
					"path", r.URL.Path,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "admin token required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
