package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// keySet caches the RSA public keys published at the identity provider's
// JWKS endpoint. Keys are fetched lazily and refetched once when a token
// carries an unknown key id, rate-limited to avoid hammering the provider.
type keySet struct {
	url    string
	client *http.Client

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	lastFetch time.Time
}

const refreshInterval = time.Minute

func newKeySet(url string) *keySet {
	return &keySet{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		keys:   map[string]*rsa.PublicKey{},
	}
}

// keyfunc resolves the signing key for a token by its kid header.
func (s *keySet) keyfunc(token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("token has no kid header")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.keys[kid]; ok {
		return key, nil
	}
	if time.Since(s.lastFetch) >= refreshInterval {
		if err := s.refresh(); err != nil {
			return nil, fmt.Errorf("failed to refresh key set: %w", err)
		}
		if key, ok := s.keys[kid]; ok {
			return key, nil
		}
	}
	return nil, fmt.Errorf("no signing key for kid %q", kid)
}

// refresh replaces the cached keys with the provider's current set.
// Caller holds s.mu.
func (s *keySet) refresh() error {
	s.lastFetch = time.Now()

	resp, err := s.client.Get(s.url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %s", resp.Status)
	}

	var doc struct {
		Keys []struct {
			Kty string `json:"kty"`
			Kid string `json:"kid"`
			Use string `json:"use"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return err
	}

	keys := map[string]*rsa.PublicKey{}
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		key, err := parseRSAKey(k.N, k.E)
		if err != nil {
			return fmt.Errorf("invalid jwks key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = key
	}
	s.keys = keys
	return nil
}

func parseRSAKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, err
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}, nil
}
