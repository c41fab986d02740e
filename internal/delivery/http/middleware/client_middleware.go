package middleware

import (
	"context"
	"net/http"
	"strings"

	"easymed-booking/pkg/jwt"
	"easymed-booking/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ClientIDKey contextKey = "client_id"
	TokenIDKey  contextKey = "token_id"
)

// ClientMiddleware identifies the browsing client from its bearer client token.
type ClientMiddleware struct {
	jwtService *jwt.JWTService
	log        *logrus.Logger
}

func NewClientMiddleware(jwtService *jwt.JWTService, log *logrus.Logger) *ClientMiddleware {
	return &ClientMiddleware{
		jwtService: jwtService,
		log:        log,
	}
}

func (m *ClientMiddleware) Authenticate(next http.Handler) http.Handler {
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
			m.log.Debugf("Rejected client token: %+v", err)
			response.Unauthorized(w, "Invalid or expired client token")
			return
		}

		ctx := context.WithValue(r.Context(), ClientIDKey, claims.ClientID)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientIDFromContext extracts client ID from context
func GetClientIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	clientID, ok := ctx.Value(ClientIDKey).(uuid.UUID)
	return clientID, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
