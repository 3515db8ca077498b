package auth

import (
	"Coffee-Shop-API/domain"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	AuthService interface {
		ExtractToken(authHeader string) (string, error)
		VerifyToken(tokenString string) (*TokenClaims, error)
		CheckPermission(claims *TokenClaims, permission string) error
	}

	TokenClaims struct {
		Permissions []string `json:"permissions"`
		jwt.RegisteredClaims
	}

	authService struct {
		issuer   string
		audience string
		jwksURL  string
		client   *http.Client

		mu   sync.RWMutex
		keys map[string]*rsa.PublicKey
	}

	jsonWebKey struct {
		Kty string `json:"kty"`
		Kid string `json:"kid"`
		Use string `json:"use"`
		N   string `json:"n"`
		E   string `json:"e"`
	}

	jsonWebKeySet struct {
		Keys []jsonWebKey `json:"keys"`
	}
)

func NewAuthService(issuer, audience, jwksURL string) AuthService {
	return &authService{
		issuer:   issuer,
		audience: audience,
		jwksURL:  jwksURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		keys:     make(map[string]*rsa.PublicKey),
	}
}

func (s *authService) ExtractToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", domain.ErrMissingAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrInvalidAuthHeader
	}
	return parts[1], nil
}

func (s *authService) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := new(TokenClaims)
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		s.signingKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, domain.ErrInvalidIssuer
	}
	if !claims.VerifyAudience(s.audience, true) {
		return nil, domain.ErrInvalidAudience
	}
	if claims.Permissions == nil {
		return nil, domain.ErrMissingPermissionsClaim
	}

	return claims, nil
}

func (s *authService) CheckPermission(claims *TokenClaims, permission string) error {
	for _, granted := range claims.Permissions {
		if granted == permission {
			return nil
		}
	}
	return domain.ErrPermissionNotFound
}

// signingKey resolves the RSA public key for the token's kid,
// refreshing the key set once when the kid is unknown.
func (s *authService) signingKey(token *jwt.Token) (any, error) {
	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, domain.ErrSigningKeyNotFound
	}

	s.mu.RLock()
	key, found := s.keys[kid]
	s.mu.RUnlock()
	if found {
		return key, nil
	}

	if err := s.refreshKeys(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	key, found = s.keys[kid]
	s.mu.RUnlock()
	if !found {
		return nil, domain.ErrSigningKeyNotFound
	}
	return key, nil
}

func (s *authService) refreshKeys() error {
	res, err := s.client.Get(s.jwksURL)
	if err != nil {
		return fmt.Errorf("fetching jwks: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching jwks: unexpected status %d", res.StatusCode)
	}

	var keySet jsonWebKeySet
	if err := json.NewDecoder(res.Body).Decode(&keySet); err != nil {
		return fmt.Errorf("decoding jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(keySet.Keys))
	for _, jwk := range keySet.Keys {
		if jwk.Kty != "RSA" {
			continue
		}
		key, err := parseRSAKey(jwk)
		if err != nil {
			return fmt.Errorf("parsing jwks key %q: %w", jwk.Kid, err)
		}
		keys[jwk.Kid] = key
	}

	s.mu.Lock()
	s.keys = keys
	s.mu.Unlock()
	return nil
}

func parseRSAKey(jwk jsonWebKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(jwk.N, "="))
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(jwk.E, "="))
	if err != nil {
		return nil, err
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
