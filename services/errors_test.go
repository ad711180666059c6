package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	malformed := []string{
		"abc",
		"",
		"-1",
		"4.2",
		"99999999999999999999",
	}
	for _, raw := range malformed {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, "ParseID(%q)", raw)
		// Malformed keys and missing records stay distinct values
		assert.NotErrorIs(t, err, ErrNotFound, "ParseID(%q)", raw)
	}
}
