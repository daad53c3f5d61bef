package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAudience = "http://localhost:8000"
	testIssuer   = "https://idp.example.com/"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(email string) Claims {
	return Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auth0|12345",
			Audience:  jwt.ClaimStrings{testAudience},
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestVerify(t *testing.T) {
	key := newTestKey(t)
	v := NewStaticVerifier(&key.PublicKey, testAudience, testIssuer)

	identity, err := v.Verify(signToken(t, key, "", validClaims("a@x.com")))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.Equal(t, "auth0|12345", identity.Subject)
}

func TestVerifyFallsBackToSubject(t *testing.T) {
	key := newTestKey(t)
	v := NewStaticVerifier(&key.PublicKey, testAudience, testIssuer)

	identity, err := v.Verify(signToken(t, key, "", validClaims("")))
	require.NoError(t, err)
	assert.Equal(t, "auth0|12345", identity.Email)
}

func TestVerifyRejections(t *testing.T) {
	key := newTestKey(t)
	v := NewStaticVerifier(&key.PublicKey, testAudience, testIssuer)

	t.Run("expired", func(t *testing.T) {
		claims := validClaims("a@x.com")
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := v.Verify(signToken(t, key, "", claims))
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := validClaims("a@x.com")
		claims.Audience = jwt.ClaimStrings{"http://somewhere-else"}
		_, err := v.Verify(signToken(t, key, "", claims))
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := validClaims("a@x.com")
		claims.Issuer = "https://evil.example.com/"
		_, err := v.Verify(signToken(t, key, "", claims))
		assert.Error(t, err)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := newTestKey(t)
		_, err := v.Verify(signToken(t, other, "", validClaims("a@x.com")))
		assert.Error(t, err)
	})

	t.Run("symmetric alg rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("a@x.com"))
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = v.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not-a-token")
		assert.Error(t, err)
	})
}

// jwksDocument serializes a public key the way the provider publishes it.
func jwksDocument(t *testing.T, kid string, pub *rsa.PublicKey) []byte {
	t.Helper()
	doc := map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"use": "sig",
			"kid": kid,
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   "AQAB",
		}},
	}
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return b
}

func TestVerifierAgainstJWKSEndpoint(t *testing.T) {
	key := newTestKey(t)

	var fetches int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Header().Set("Content-Type", "application/json")
		w.Write(jwksDocument(t, "key-1", &key.PublicKey))
	}))
	defer srv.Close()

	v := NewVerifier(testAudience, testIssuer, srv.URL)

	identity, err := v.Verify(signToken(t, key, "key-1", validClaims("a@x.com")))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.Equal(t, 1, fetches)

	// Cached key is reused
	_, err = v.Verify(signToken(t, key, "key-1", validClaims("a@x.com")))
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)

	// Unknown kid fails without refetching inside the rate-limit window
	_, err = v.Verify(signToken(t, key, "key-2", validClaims("a@x.com")))
	assert.Error(t, err)
	assert.Equal(t, 1, fetches)
}

func TestVerifierRejectsMissingKid(t *testing.T) {
	key := newTestKey(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(jwksDocument(t, "key-1", &key.PublicKey))
	}))
	defer srv.Close()

	v := NewVerifier(testAudience, testIssuer, srv.URL)
	_, err := v.Verify(signToken(t, key, "", validClaims("a@x.com")))
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	key := newTestKey(t)
	v := NewStaticVerifier(&key.PublicKey, testAudience, testIssuer)

	var gotIdentity Identity
	var handlerCalls int
	protected := v.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalls++
		gotIdentity, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, handlerCalls)
		assert.JSONEq(t, `{"error":"unauthorized","message":"missing bearer token"}`, rec.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, handlerCalls)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, key, "", validClaims("a@x.com")))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, handlerCalls)
		assert.Equal(t, "a@x.com", gotIdentity.Email)
	})
}
