package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/daniilsolovey/cms/internal/db"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// UserStore is the part of the repository the service reads and writes users with.
type UserStore interface {
	UserByUsername(ctx context.Context, username string) (*db.User, error)
	InsertUser(ctx context.Context, user *db.User) error
}

type Service struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(users UserStore, secret string, ttl time.Duration) *Service {
	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Authenticate checks the password against the stored bcrypt hash.
// Unknown users and wrong passwords both give ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) error {
	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("db get user: %w", err)
	} else if user == nil {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

// CreateUser stores a user with a bcrypt hash of password.
func (s *Service) CreateUser(ctx context.Context, username, password string) (*db.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password must not be empty")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &db.User{Username: username, PasswordHash: hash}
	if err := s.users.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("db insert user: %w", err)
	}

	return user, nil
}

// IssueToken signs an HS256 token for username valid for the configured TTL.
func (s *Service) IssueToken(username string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ParseToken verifies the token and returns its subject.
func (s *Service) ParseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}
