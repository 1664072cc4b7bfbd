package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maxviazov/futbol-stats-service/internal/config"
	"github.com/rs/zerolog"
)

var (
	// ErrBadCredentials means the submitted password does not match the
	// server-held secret (maps to HTTP 401).
	ErrBadCredentials = errors.New("bad credentials")
	// ErrInvalidToken covers tampered, malformed and expired tokens
	// (maps to HTTP 403 on protected routes).
	ErrInvalidToken = errors.New("invalid token")
)

const tokenIssuer = "futbol-stats-service"

type tokenService struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewTokenService builds the HS256 token issuer from auth config.
func NewTokenService(cfg config.AuthConfig, logger zerolog.Logger) TokenService {
	return newTokenService(cfg, logger, time.Now)
}

// newTokenService lets tests pin the clock.
func newTokenService(cfg config.AuthConfig, logger zerolog.Logger, now func() time.Time) *tokenService {
	l := logger.With().Str("module", "service").Str("component", "auth").Logger()
	return &tokenService{
		password: []byte(cfg.Password),
		secret:   []byte(cfg.TokenSecret),
		ttl:      time.Duration(cfg.TokenTTLMinutes) * time.Minute,
		now:      now,
		log:      l,
	}
}

func (s *tokenService) Login(_ context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), s.password) != 1 {
		s.log.Warn().Msg("login with wrong password")
		return "", ErrBadCredentials
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.log.Error().Err(err).Msg("token signing failed")
		return "", err
	}
	s.log.Info().Time("expires_at", now.Add(s.ttl)).Msg("token issued")
	return token, nil
}

func (s *tokenService) Verify(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		s.log.Warn().Err(err).Msg("token rejected")
		return ErrInvalidToken
	}
	return nil
}

var _ TokenService = (*tokenService)(nil)
