package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainScheme_HashIsIdentity(t *testing.T) {
	h, err := PlainScheme{}.Hash("pw123")
	require.NoError(t, err)
	assert.Equal(t, "pw123", h)
}

func TestPlainScheme_Verify(t *testing.T) {
	s := PlainScheme{}
	assert.True(t, s.Verify("pw123", "pw123"))
	assert.False(t, s.Verify("pw123", "pw124"))
	assert.False(t, s.Verify("pw123", ""))
}

func TestBcryptScheme_HashAndVerify(t *testing.T) {
	s := BcryptScheme{}

	h, err := s.Hash("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", h)

	assert.True(t, s.Verify(h, "pw123"))
	assert.False(t, s.Verify(h, "wrong"))
}

func TestBcryptScheme_RejectsPlainStoredValue(t *testing.T) {
	assert.False(t, BcryptScheme{}.Verify("pw123", "pw123"))
}
