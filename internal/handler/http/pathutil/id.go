package pathutil

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID is returned for a path ID that is not a UUID.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses an analysis ID taken from r.PathValue("id").
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
