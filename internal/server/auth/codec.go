// Package auth encodes and decodes session tokens.
//
// A token stands in for "I am this account": it carries the account ID, email
// and display name and is decoded without consulting the account store.
// Two codecs share one interface so callers do not change when the scheme is
// upgraded:
//
//   - PlainCodec: reversible base64(JSON), no signature and no expiry. Anyone
//     holding or guessing the bytes can impersonate the account. Development
//     placeholder only.
//   - JWTCodec: HS256-signed JWT with optional expiry.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

// Codec mints and reads session tokens.
type Codec interface {
	Encode(id models.Identity) (string, error)
	// Decode returns common.ErrInvalidToken (or common.ErrTokenExpired) when
	// the token is not usable.
	Decode(token string) (*models.Identity, error)
}

// Codec names accepted by NewCodec.
const (
	CodecPlain = "plain"
	CodecJWT   = "jwt"
)

// Options configures NewCodec.
type Options struct {
	Kind      string
	SecretKey string
	Validity  time.Duration
}

// NewCodec builds the codec selected by opts.Kind.
func NewCodec(opts Options) (Codec, error) {
	switch opts.Kind {
	case "", CodecPlain:
		return PlainCodec{}, nil
	case CodecJWT:
		if opts.SecretKey == "" {
			return nil, fmt.Errorf("jwt codec requires a secret key")
		}
		return NewJWTCodec([]byte(opts.SecretKey), opts.Validity), nil
	default:
		return nil, fmt.Errorf("unknown token codec %q", opts.Kind)
	}
}
