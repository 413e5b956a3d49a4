package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/noah-isme/academy-api/pkg/errors"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = ParseID("0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)
}

func TestParseIDRejectsNonDigits(t *testing.T) {
	for _, raw := range []string{"", "abc", "-1", "+1", " 1", "1 ", "1.5", "1e3", "12abc"} {
		_, err := ParseID(raw)
		require.Error(t, err, raw)

		var appErr *apperrors.Error
		require.True(t, errors.As(err, &appErr), raw)
		assert.Equal(t, 400, appErr.Status, raw)
	}
}
