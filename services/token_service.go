package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

const revokedKeyPrefix = "auth:revoked:"

// Claims là payload của access token
type Claims struct {
	UserID uint `json:"userid"`
	jwt.StandardClaims
}

// RevocationStore remembers signed-out token ids until they would expire anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisRevocationStore struct {
	rdb *redis.Client
}

func NewRedisRevocationStore(rdb *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{rdb: rdb}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token %s: %w", jti, err)
	}
	return nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check token %s: %w", jti, err)
	}
	return n > 0, nil
}

type TokenServiceOptions struct {
	Secret    string
	ExpiresIn time.Duration
	// Revoked is optional; without it sign-out cannot invalidate a token early.
	Revoked RevocationStore
}

type TokenService struct {
	secret    []byte
	expiresIn time.Duration
	revoked   RevocationStore
}

func NewTokenService(opts TokenServiceOptions) *TokenService {
	if opts.ExpiresIn <= 0 {
		opts.ExpiresIn = 24 * time.Hour
	}
	return &TokenService{
		secret:    []byte(opts.Secret),
		expiresIn: opts.ExpiresIn,
		revoked:   opts.Revoked,
	}
}

// GenerateToken ký token HS256 cho user, kèm jti ngẫu nhiên để có thể thu hồi
func (s *TokenService) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   fmt.Sprint(userID),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.expiresIn).Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and rejects revoked tokens.
func (s *TokenService) ParseToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.revoked != nil && claims.Id != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.Id)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}
	return claims, nil
}

func (s *TokenService) RevokeToken(ctx context.Context, claims *Claims) error {
	if s.revoked == nil || claims.Id == "" {
		return nil
	}
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	return s.revoked.Revoke(ctx, claims.Id, ttl)
}
