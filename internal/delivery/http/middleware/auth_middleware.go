package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/jwt"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   uuid.UUID
	Username string
	RoleID   int
	TokenID  string
}

func (p Principal) IsAdmin() bool {
	return p.RoleID == entity.RoleIDAdmin
}

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokens     repository.TokenStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokens repository.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokens:     tokens,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Revoked tokens are no longer whitelisted.
		exists, err := m.tokens.Exists(r.Context(), repository.TokenKindAccess, claims.UserID, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithPrincipal(r.Context(), Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			RoleID:   claims.RoleID,
			TokenID:  claims.TokenID,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// GetRoleIDFromContext extracts role ID from context
func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	p, ok := PrincipalFromContext(ctx)
	return p.RoleID, ok
}
