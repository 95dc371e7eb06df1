package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/httputil"
	"agora/pkg/requestcontext"
)

// JWTValidator turns a bearer token into the caller's identity.
type JWTValidator interface {
	ValidateToken(token string) (*JWTClaims, error)
}

type JWTClaims struct {
	UserID  id.UserID
	TokenID string
}

// RequireAuth admits only requests with a valid bearer token and puts the
// caller's user id on the request context for requestcontext.UserID.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			claims, reason, err := authenticate(validator, r.Header.Get("Authorization"))
			if err != nil {
				logger.WarnContext(ctx, "request rejected",
					"reason", reason,
					"path", r.URL.Path,
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid bearer token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(requestcontext.WithUserID(ctx, claims.UserID)))
		})
	}
}

func authenticate(validator JWTValidator, header string) (*JWTClaims, string, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return nil, "missing_token", dErrors.New(dErrors.CodeUnauthorized, "no bearer token")
	}
	claims, err := validator.ValidateToken(strings.TrimSpace(token))
	if err != nil {
		return nil, "invalid_token", err
	}
	return claims, "", nil
}
