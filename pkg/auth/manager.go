package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/regional-portal/geo-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleReader = "reader"
	RoleAdmin  = "admin"
)

var (
	ErrAccessTokenExpired = errors.New("token has invalid claims: token is expired")
	ErrInvalidSubject     = errors.New("token subject is not a user id")
)

// Claims are issued by the portal auth service. The geo backend only verifies them.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidSubject
	}
	return id, nil
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// TokenManager provides logic for JWT generation and parsing.
type TokenManager interface {
	NewJWT(userID uuid.UUID, role string) (string, time.Duration, error)
	Parse(accessToken string) (*Claims, error)
}

type Manager struct {
	signingKey     string
	accessTokenTTL time.Duration
	now            func() time.Time
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.AccessTokenTTL == 0 {
		return nil, errors.New("empty access token ttl")
	}

	return &Manager{
		signingKey:     cfg.SigningKey,
		accessTokenTTL: cfg.AccessTokenTTL,
		now:            time.Now,
	}, nil
}

func (m *Manager) NewJWT(userID uuid.UUID, role string) (string, time.Duration, error) {
	if role == "" {
		role = RoleReader
	}

	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenTTL)),
			Subject:   userID.String(),
		},
		Role: role,
	})

	accessToken, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", 0, errors.New("sign jwt failed")
	}

	return accessToken, m.accessTokenTTL, nil
}

func (m *Manager) Parse(accessToken string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (i interface{}, err error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrAccessTokenExpired
		}
		return nil, err
	}

	if _, err := claims.UserID(); err != nil {
		return nil, err
	}

	return claims, nil
}
