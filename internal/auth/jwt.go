package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// Identity is the verified caller attached to the request context.
type Identity struct {
	Subject string
	Email   string
}

type contextKey string

const identityKey = contextKey("authIdentity")

// IdentityFromContext returns the verified identity set by the middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// Claims defines the token claims this API reads.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens issued by the external identity
// provider: RS256 signature against the provider's key set, plus the
// expected audience and issuer.
type Verifier struct {
	audience string
	issuer   string
	keyfunc  jwt.Keyfunc
}

// NewVerifier creates a Verifier backed by the provider's JWKS endpoint.
func NewVerifier(audience, issuer, jwksURL string) *Verifier {
	keys := newKeySet(jwksURL)
	return &Verifier{audience: audience, issuer: issuer, keyfunc: keys.keyfunc}
}

// NewStaticVerifier creates a Verifier with a fixed public key. Used in tests.
func NewStaticVerifier(key *rsa.PublicKey, audience, issuer string) *Verifier {
	return &Verifier{
		audience: audience,
		issuer:   issuer,
		keyfunc: func(*jwt.Token) (interface{}, error) {
			return key, nil
		},
	}
}

// Verify parses and validates a bearer token string.
func (v *Verifier) Verify(tokenStr string) (Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, v.keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, err
	}

	email := claims.Email
	if email == "" {
		email = claims.Subject
	}
	return Identity{Subject: claims.Subject, Email: email}, nil
}

// Middleware creates a request filter for protected routes. It rejects
// the request with 401 before any handler or store call runs.
func (v *Verifier) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			identity, err := v.Verify(tokenStr)
			if err != nil {
				log.Warn().Err(err).Msg("Rejected bearer token")
				writeUnauthorized(w, "invalid bearer token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeUnauthorized emits the standard error envelope. The middleware
// cannot use the handlers package helpers without an import cycle.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "unauthorized",
		"message": message,
	})
}
