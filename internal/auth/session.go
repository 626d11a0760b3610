// Package auth verifies sessions issued by the external identity provider.
// Tokens are HMAC-signed JWTs; this system never issues them.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"friendzone/pkg/errors"
)

type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type Session struct {
	User SessionUser `json:"user"`
}

type contextKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}

// ParseToken validates the bearer token and extracts the session. Standard
// OIDC-style claims: sub, email, picture.
func ParseToken(tokenStr, secret string) (*Session, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrNoSession
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.ErrNoSession
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.ErrNoSession
	}
	email, _ := claims["email"].(string)
	image, _ := claims["picture"].(string)

	return &Session{User: SessionUser{ID: sub, Email: email, Image: image}}, nil
}
