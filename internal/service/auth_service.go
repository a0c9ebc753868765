package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pylearn/internal/config"
	"pylearn/internal/dto"
	"pylearn/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const defaultRole = "authenticated"

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService validates bearer tokens issued by the external auth provider.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	// IssueToken signs a token with the shared secret. Used by the jobs CLI for local testing.
	IssueToken(ctx context.Context, userID, email string, ttl time.Duration) (string, error)
}

type authServiceImpl struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret is not configured")
	}
	return &authServiceImpl{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL}, nil
}

func (s *authServiceImpl) IssueToken(ctx context.Context, userID, email string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := time.Now()
	claims := dto.AuthClaims{
		Email: email,
		Role:  defaultRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		logger.Get().Warn("JWT validation failed",
			zap.Error(err),
			zap.Bool("expired", errors.Is(err, jwt.ErrTokenExpired)),
			zap.String("token_snippet", tokenString[:min(len(tokenString), 20)]+"..."))
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidJWTToken
	}
	if claims.Role == "" {
		claims.Role = defaultRole
	}
	return claims, nil
}
