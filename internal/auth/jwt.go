package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ht5play/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTProvider signs HS256 tokens for the single admin account held in
// config. The password is stored as a bcrypt hash, never plaintext.
type JWTProvider struct {
	secret     []byte
	adminEmail string
	adminHash  []byte
	ttl        time.Duration
}

func NewJWTProvider(cfg config.AuthConfig) *JWTProvider {
	return &JWTProvider{
		secret:     []byte(cfg.Secret),
		adminEmail: cfg.AdminEmail,
		adminHash:  []byte(cfg.AdminPasswordHash),
		ttl:        cfg.TokenTTL,
	}
}

func (p *JWTProvider) Login(_ context.Context, email, password string) (string, error) {
	const op = "auth.jwt.Login"

	if !strings.EqualFold(email, p.adminEmail) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword(p.adminHash, []byte(password)); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	claims := jwt.MapClaims{
		"sub":   p.adminEmail,
		"admin": true,
		"exp":   time.Now().Add(p.ttl).Unix(),
		"iat":   time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

func (p *JWTProvider) Validate(_ context.Context, tokenString string) (*Identity, error) {
	const op = "auth.jwt.Validate"

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	admin, _ := claims["admin"].(bool)
	if sub == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &Identity{Email: sub, Admin: admin}, nil
}
