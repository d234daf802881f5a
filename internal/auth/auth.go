package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lendq/loan-intake/pkg/apperr"
	"github.com/lendq/loan-intake/pkg/response"
)

const tokenIssuer = "loan-intake"

// TokenStore records issued token IDs for their lifetime. A token whose ID
// is no longer present is treated as revoked.
type TokenStore interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
}

// RedisTokenStore keeps issued token IDs in Redis, expiring with the token.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func tokenKey(jti string) string {
	return "auth:token:" + jti
}

func (s *RedisTokenStore) Add(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(jti), "1", ttl).Err()
}

func (s *RedisTokenStore) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TokenService exchanges the configured API key for short-lived HMAC-signed
// bearer tokens and validates them on every request.
type TokenService struct {
	store  TokenStore
	secret []byte
	apiKey string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(store TokenStore, secret, apiKey string, ttl time.Duration) *TokenService {
	return &TokenService{
		store:  store,
		secret: []byte(secret),
		apiKey: apiKey,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue returns a signed token and its expiry after checking the API key.
func (s *TokenService) Issue(ctx context.Context, apiKey string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.apiKey)) != 1 {
		return "", time.Time{}, apperr.Unauthorized("invalid API key")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperr.Unexpected(err)
	}

	if err := s.store.Add(ctx, claims.ID, s.ttl); err != nil {
		return "", time.Time{}, apperr.Unexpected(err)
	}

	return signed, expiresAt, nil
}

// Validate checks the signature, expiry and registry entry of a token.
func (s *TokenService) Validate(ctx context.Context, tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return apperr.Unauthorized("invalid or expired token")
	}
	if claims.ID == "" {
		return apperr.Unauthorized("invalid or expired token")
	}

	known, err := s.store.Exists(ctx, claims.ID)
	if err != nil {
		return apperr.Unexpected(err)
	}
	if !known {
		return apperr.Unauthorized("token has been revoked")
	}

	return nil
}

// Middleware requires a valid bearer token on every wrapped route.
func (s *TokenService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.AppError(w, apperr.Unauthorized("missing bearer token"), false)
			return
		}

		if err := s.Validate(r.Context(), token); err != nil {
			response.AppError(w, err, false)
			return
		}

		next.ServeHTTP(w, r)
	})
}
