package middleware

import (
	"errors"
	"net/http"
	"strings"

	"orgchart-backend/pkg/common"
	"orgchart-backend/pkg/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHeader carries the editor session identifier. Telemetry is
// partitioned by this value.
const SessionHeader = "X-Session-ID"

// Session resolves the editor session for every request and stores it
// in the request context. Resolution order: explicit X-Session-ID
// header, session claim from a bearer token, freshly minted UUID. The
// resolved id is echoed back in the response header so clients that
// started without one can keep it.
func Session(validator *session.Validator, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))

			if sessionID == "" && validator != nil {
				if token := bearerToken(r); token != "" {
					claims, err := validator.Validate(token)
					switch {
					case err == nil:
						sessionID = claims.SessionID
					case errors.Is(err, session.ErrExpiredToken):
						respondUnauthorized(w, "Session token has expired")
						return
					default:
						logger.Warn("Invalid session token",
							zap.Error(err),
							zap.String("path", r.URL.Path),
						)
						respondUnauthorized(w, "Invalid session token")
						return
					}
				}
			}

			if sessionID == "" {
				sessionID = uuid.New().String()
			}

			w.Header().Set(SessionHeader, sessionID)
			ctx := common.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(w http.ResponseWriter, message string) {
	common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", message)
}
