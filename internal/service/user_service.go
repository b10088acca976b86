package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/VamsidharReddy01/MyRestaurant/internal/repository"
)

const sessionTTL = 24 * time.Hour

// UserService authenticates staff users and manages their session tokens.
type UserService struct {
	repo   repository.UserRepository
	rdb    *redis.Client
	secret string
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repository.UserRepository, rdb *redis.Client, secret string) *UserService {
	return &UserService{
		repo:   repo,
		rdb:    rdb,
		secret: secret,
	}
}

type JwtCustomClaims struct {
	Name  string `json:"name"`
	Staff bool   `json:"staff"`
	jwt.RegisteredClaims
}

// Login verifies the credentials and, for staff users only, issues a signed
// token backed by a redis session.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if !user.IsStaff {
		return "", ErrNotStaff
	}

	claims := &JwtCustomClaims{
		Name:  user.Username,
		Staff: user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := tkn.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	// Store the token in redis so it can be revoked before its JWT expiry.
	if err := s.rdb.Set(ctx, "session:"+t, user.Username, sessionTTL).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error storing session for user %s", user.Username)
		return "", err
	}

	return t, nil
}

// ValidateToken looks the token up in redis and returns the session's
// username. A missing session means the token is invalid or revoked.
func (s *UserService) ValidateToken(ctx context.Context, token string) (string, error) {
	username, err := s.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrUnauthenticated
		}
		return "", err
	}

	return username, nil
}
