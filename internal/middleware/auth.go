package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// UserID returns the authenticated user's ID from the request context, or
// uuid.Nil if the request is unauthenticated.
func UserID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(userIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// Role returns the authenticated user's role from the request context.
func Role(ctx context.Context) model.Role {
	if role, ok := ctx.Value(roleKey).(model.Role); ok {
		return role
	}
	return model.RoleUser
}

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, userID uuid.UUID, role model.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// Session validates the bearer token on every request except the health
// check and public catalogue reads, and stores the resolved identity in the
// request context. Tokens are issued by the external identity service; only
// verification happens here.
func Session(jwtSecret string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing bearer token")
				unauthorised(w)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				logger.Warn().Str("path", r.URL.Path).Msg("malformed authorization header")
				unauthorised(w)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("invalid token")
				unauthorised(w)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorised(w)
				return
			}

			sub, ok := claims["sub"].(string)
			if !ok {
				logger.Warn().Str("path", r.URL.Path).Msg("token missing subject")
				unauthorised(w)
				return
			}

			userID, err := uuid.Parse(sub)
			if err != nil {
				logger.Warn().Str("path", r.URL.Path).Msg("token subject is not a user ID")
				unauthorised(w)
				return
			}

			role := model.RoleUser
			if claimRole, ok := claims["role"].(string); ok && model.Role(claimRole) == model.RoleAdmin {
				role = model.RoleAdmin
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), userID, role)))
		})
	}
}

// RequireAdmin rejects requests whose resolved role is not ADMIN. It must run
// after Session.
func RequireAdmin(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if Role(r.Context()) != model.RoleAdmin {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("user_id", UserID(r.Context()).String()).
					Msg("admin access denied")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error": "` + model.ErrCodeForbidden + `", "message": "admin access required"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isPublicRoute reports whether the request needs no identity.
func isPublicRoute(r *http.Request) bool {
	if r.URL.Path == "/health" {
		return true
	}
	// Catalogue reads are public; all writes require a session.
	if r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/products") {
		return true
	}
	return false
}

func unauthorised(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "` + model.ErrCodeUnauthorised + `", "message": "authentication required"}`))
}
