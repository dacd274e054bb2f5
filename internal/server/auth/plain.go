package auth

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

// PlainCodec encodes the identity as standard, padded base64 of its JSON
// form. The output matches what a browser produces with
// btoa(JSON.stringify({id, email, name})) for ASCII payloads.
type PlainCodec struct{}

func (PlainCodec) Encode(id models.Identity) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// JSON.stringify leaves <, > and & as they are
	enc.SetEscapeHTML(false)
	if err := enc.Encode(id); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func (PlainCodec) Decode(token string) (*models.Identity, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		// browsers' atob also accepts unpadded input
		if raw, err = base64.RawStdEncoding.DecodeString(token); err != nil {
			return nil, common.ErrInvalidToken
		}
	}

	var id models.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, common.ErrInvalidToken
	}
	if id.ID == "" {
		return nil, common.ErrInvalidToken
	}

	return &id, nil
}
