package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by access tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Inactive bool   `json:"inactive,omitempty"`
	jwt.RegisteredClaims
}

// Verifier implements port.IdentityVerifier for HS256 tokens.
type Verifier struct {
	key    []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{key: []byte(secret), issuer: issuer}
}

func (v *Verifier) Verify(_ context.Context, credential string) (domain.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(credential, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, fmt.Errorf("%w: token expired", domain.ErrUnauthenticated)
		}
		return domain.Identity{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Identity{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
	}
	if claims.UserID == "" {
		return domain.Identity{}, fmt.Errorf("%w: token has no user", domain.ErrUnauthenticated)
	}
	if claims.Inactive {
		return domain.Identity{}, fmt.Errorf("%w: account is inactive", domain.ErrUnauthenticated)
	}
	return domain.Identity{
		UserID:      domain.UserID(claims.UserID),
		DisplayName: claims.Name,
	}, nil
}

// Issuer signs tokens the Verifier accepts.
type Issuer struct {
	key    []byte
	issuer string
	now    func() time.Time
}

func NewIssuer(secret, issuer string) *Issuer {
	return &Issuer{key: []byte(secret), issuer: issuer, now: time.Now}
}

func (i *Issuer) Issue(identity domain.Identity, ttl time.Duration) (string, error) {
	now := i.now()
	claims := &Claims{
		UserID: identity.UserID.String(),
		Name:   identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}
