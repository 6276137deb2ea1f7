package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"agency-ops/internal/config/configs"
	"agency-ops/internal/core/domain"
)

// Claims is the payload of the bearer tokens issued by the identity
// provider. The subject carries the user id.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens and turns them into domain
// identities.
type Authenticator struct {
	secret   []byte
	issuer   string
	audience string
}

// NewAuthenticator returns an authenticator for cfg.
func NewAuthenticator(cfg configs.Auth) *Authenticator {
	return &Authenticator{secret: []byte(cfg.Secret), issuer: cfg.Issuer, audience: cfg.Audience}
}

// Verify parses and validates token.
func (a *Authenticator) Verify(token string) (domain.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	if a.audience != "" {
		opts = append(opts, jwt.WithAudience(a.audience))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("token subject is not a user id: %w", err)
	}
	who := domain.Identity{UserID: userID, Email: claims.Email}
	for _, r := range claims.Roles {
		who.Roles = append(who.Roles, domain.Role(r))
	}
	return who, nil
}

// Issue signs a token for who that expires after ttl. The service itself
// never issues tokens to callers; this is used by tests and local tooling.
func (a *Authenticator) Issue(who domain.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: who.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   who.UserID.String(),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if a.audience != "" {
		claims.Audience = jwt.ClaimStrings{a.audience}
	}
	for _, r := range who.Roles {
		claims.Roles = append(claims.Roles, string(r))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

type identityCtxKey struct{}

// WithIdentity stores who in ctx.
func WithIdentity(ctx context.Context, who domain.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, who)
}

// IdentityFromContext returns the identity stored by the auth middleware.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	who, ok := ctx.Value(identityCtxKey{}).(domain.Identity)
	return who, ok
}

var errMissingToken = errors.New("missing bearer token")

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingToken
	}
	return strings.TrimSpace(token), nil
}

// RequireAuth rejects requests without a valid bearer token with 401.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED", nil)
			return
		}
		who, err := h.auth.Verify(token)
		if err != nil {
			h.logger.Debug("rejected bearer token", "error", err)
			writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), who)))
	})
}
