package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("a@b.c"))
	assert.False(t, ValidateEmail("no-at-sign"))
	assert.False(t, ValidateEmail("no-dot@domain"))
	assert.False(t, ValidateEmail("white space@example.com"))
	assert.False(t, ValidateEmail("two@@example.com"))
}

func TestValidateName(t *testing.T) {
	assert.False(t, ValidateName("a"))
	assert.True(t, ValidateName("ab"))
	assert.True(t, ValidateName("Siti Rahayu"))
	assert.False(t, ValidateName(""))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("  hello \n"))
	assert.Equal(t, "a b", Sanitize("a b"))
}

func TestStampDoesNotMutateInput(t *testing.T) {
	in := map[string]interface{}{"data": 1}
	out := Stamp(in)

	assert.NotContains(t, in, "timestamp")
	assert.Contains(t, out, "timestamp")
	assert.Equal(t, 1, out["data"])
}

func TestStampIsIdempotentExceptTimestamp(t *testing.T) {
	once := Stamp(map[string]interface{}{"data": "x"})
	twice := Stamp(once)

	assert.Equal(t, once["data"], twice["data"])
	assert.Len(t, twice, len(once))
}

func TestParseRequestSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"5", 5},
		{"10b", 10},
		{"2kb", 2 * 1024},
		{"10mb", 10 * 1024 * 1024},
		{"10MB", 10 * 1024 * 1024},
		{" 1kb ", 1024},
	}
	for _, tc := range cases {
		got, err := ParseRequestSize(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"abc", "", "10gb", "-5", "mb", "1.5mb"} {
		_, err := ParseRequestSize(bad)
		assert.Error(t, err, bad)
	}
}
