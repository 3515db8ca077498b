package auth

import (
	"Coffee-Shop-API/domain"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyID    = "test-key-1"
	testIssuer   = "https://coffee-shop.test/"
	testAudience = "drinks"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func newJWKSServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()
	jwks := map[string]any{
		"keys": []map[string]any{
			{
				"kty": "RSA",
				"kid": testKeyID,
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
			},
		},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwks)
	}))
	t.Cleanup(server.Close)
	return server
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKeyID
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(permissions []string) TokenClaims {
	return TokenClaims{
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestExtractToken(t *testing.T) {
	service := NewAuthService(testIssuer, testAudience, "")

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"missing header", "", "", domain.ErrMissingAuthHeader},
		{"no bearer prefix", "Token abc", "", domain.ErrInvalidAuthHeader},
		{"single part", "abc", "", domain.ErrInvalidAuthHeader},
		{"three parts", "Bearer abc def", "", domain.ErrInvalidAuthHeader},
		{"well-formed", "Bearer abc", "abc", nil},
		{"case-insensitive scheme", "bearer abc", "abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.ExtractToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestVerifyToken(t *testing.T) {
	key := newTestKey(t)
	server := newJWKSServer(t, key)
	service := NewAuthService(testIssuer, testAudience, server.URL)

	t.Run("valid token yields permissions", func(t *testing.T) {
		token := signToken(t, key, validClaims([]string{"get:drinks-detail", "post:drinks"}))
		claims, err := service.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, []string{"get:drinks-detail", "post:drinks"}, claims.Permissions)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims([]string{"post:drinks"})
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		token := signToken(t, key, claims)
		_, err := service.VerifyToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := validClaims([]string{"post:drinks"})
		claims.Audience = jwt.ClaimStrings{"someone-else"}
		token := signToken(t, key, claims)
		_, err := service.VerifyToken(token)
		assert.ErrorIs(t, err, domain.ErrInvalidAudience)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := validClaims([]string{"post:drinks"})
		claims.Issuer = "https://intruder.test/"
		token := signToken(t, key, claims)
		_, err := service.VerifyToken(token)
		assert.ErrorIs(t, err, domain.ErrInvalidIssuer)
	})

	t.Run("missing permissions claim", func(t *testing.T) {
		token := signToken(t, key, validClaims(nil))
		_, err := service.VerifyToken(token)
		assert.ErrorIs(t, err, domain.ErrMissingPermissionsClaim)
	})

	t.Run("empty permissions claim is present", func(t *testing.T) {
		token := signToken(t, key, validClaims([]string{}))
		claims, err := service.VerifyToken(token)
		require.NoError(t, err)
		assert.Empty(t, claims.Permissions)
	})

	t.Run("token signed by unknown key", func(t *testing.T) {
		otherKey := newTestKey(t)
		token := signToken(t, otherKey, validClaims([]string{"post:drinks"}))
		_, err := service.VerifyToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("hmac token rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims([]string{"post:drinks"}))
		token.Header["kid"] = testKeyID
		signed, err := token.SignedString([]byte("shared-secret"))
		require.NoError(t, err)
		_, err = service.VerifyToken(signed)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.VerifyToken("not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

func TestCheckPermission(t *testing.T) {
	service := NewAuthService(testIssuer, testAudience, "")
	claims := &TokenClaims{Permissions: []string{"get:drinks-detail"}}

	assert.NoError(t, service.CheckPermission(claims, "get:drinks-detail"))
	assert.ErrorIs(t, service.CheckPermission(claims, "delete:drinks"), domain.ErrPermissionNotFound)
}
