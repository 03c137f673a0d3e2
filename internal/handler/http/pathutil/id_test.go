package pathutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	valid := uuid.MustParse("2f1c6a9e-3b5d-4c7e-9f00-1a2b3c4d5e6f")

	id, err := ParseID(valid.String())
	require.NoError(t, err)
	assert.Equal(t, valid, id)

	id, err = ParseID("2F1C6A9E-3B5D-4C7E-9F00-1A2B3C4D5E6F")
	require.NoError(t, err)
	assert.Equal(t, valid, id)

	for _, bad := range []string{"", "123", "not-a-uuid", uuid.Nil.String(), valid.String() + "0"} {
		t.Run(bad, func(t *testing.T) {
			_, err := ParseID(bad)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}
