package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the registered JWT claims plus the session identity.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// JWTCodec signs tokens with HS256. A zero validity issues tokens without
// an expiry, matching the lifetime of the plain scheme.
type JWTCodec struct {
	secretKey []byte
	validity  time.Duration
	now       func() time.Time
}

func NewJWTCodec(secretKey []byte, validity time.Duration) *JWTCodec {
	return &JWTCodec{secretKey: secretKey, validity: validity, now: time.Now}
}

func (c *JWTCodec) Encode(id models.Identity) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  id.ID,
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
		AccountID: id.ID,
		Email:     id.Email,
		Name:      id.Name,
	}
	if c.validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(c.now().Add(c.validity))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secretKey)
}

func (c *JWTCodec) Decode(tokenString string) (*models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.AccountID == "" {
		return nil, common.ErrInvalidToken
	}

	return &models.Identity{ID: claims.AccountID, Email: claims.Email, Name: claims.Name}, nil
}
