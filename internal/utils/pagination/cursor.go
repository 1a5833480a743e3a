// Package pagination encodes the opaque next-page tokens handed to clients.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	apperr "github.com/oggyb/interview-match/internal/errors"
)

// Cursor is the state carried between pages. Matches are listed newest-first
// by id, so the last id seen is enough to resume.
type Cursor struct {
	LastID uint64 `json:"last_id"`
}

// Encode turns c into a URL-safe token.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a token produced by Encode. An empty token is the first page;
// anything unreadable is ErrInvalidInput so it maps to InvalidArgument.
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, apperr.Invalid("pagination token is not base64")
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, apperr.Invalid("pagination token is malformed")
	}
	return c, nil
}
