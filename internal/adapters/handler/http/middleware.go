package http

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

type contextKey string

const IdentityKey contextKey = "identity"

type Authenticator struct {
	jwtSecret []byte
}

func NewAuthenticator(jwtSecret []byte) *Authenticator {
	return &Authenticator{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates the access token cookie and puts the claimed
// identity on the request context.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("access_token")
		if err != nil || cookie.Value == "" {
			http.Error(w, "Unauthorized: missing access token", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized: invalid access token", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "Unauthorized: invalid access token", http.StatusUnauthorized)
			return
		}

		identity := &domain.Identity{}
		if sub, ok := claims["sub"].(string); ok {
			identity.ID = sub
		}
		if email, ok := claims["email"].(string); ok {
			identity.Email = email
		}
		if role, ok := claims["role"].(string); ok {
			identity.Role = domain.Role(role)
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route to the given roles. Must run after
// Authenticate.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := r.Context().Value(IdentityKey).(*domain.Identity)
			if !ok {
				http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
		})
	}
}
