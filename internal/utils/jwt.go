package utils // package utils provides helpers for issuing and decoding access tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/giftshop-catalog/internal/model"
)

// ErrInvalidToken covers every reason a bearer token is rejected: bad
// signature, expiry, wrong algorithm or an incomplete payload.
var ErrInvalidToken = errors.New("invalid token")

// accessClaims is the wire shape of an access token: the subject carries the
// user id and role sits next to the registered claims.
type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AccessToken is a signed JWT together with its expiry.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken signs an HS256 token for userID with the given role.
func NewAccessToken(secret, userID, role string, ttl time.Duration) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := accessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies raw against secret and decodes it into a
// validated payload.  The payload's Token is the raw string itself so
// downstream calls can forward it.
func ParseAccessToken(secret, raw string) (model.TokenPayload, error) {
	var claims accessClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return model.TokenPayload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return model.TokenPayload{}, ErrInvalidToken
	}

	p := model.TokenPayload{ID: claims.Subject, Role: claims.Role, Token: raw}
	if err := p.Validate(); err != nil {
		return model.TokenPayload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return p, nil
}
