package auth

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	request "casework/pkg/platform/middleware/request"
	"casework/pkg/requestcontext"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	Actor       string
	Authorities []string
	JTI         string
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + errCode + `","error_description":"` + errDesc + `"}`))
}

// RequireAuth validates the bearer token and records its actor in context.
// When authorities are given the token must carry at least one of them.
func RequireAuth(validator JWTValidator, logger *slog.Logger, authorities ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := request.GetRequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			if len(authorities) > 0 && !slices.ContainsFunc(authorities, func(a string) bool {
				return slices.Contains(claims.Authorities, a)
			}) {
				logger.WarnContext(ctx, "forbidden - missing authority",
					"request_id", requestID,
					"actor", claims.Actor,
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Token lacks the required authority")
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithActor(ctx, claims.Actor)))
		})
	}
}
