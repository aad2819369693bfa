package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher(t *testing.T) {
	hasher := NewArgon2Hasher()

	credential, err := hasher.Hash("changeme")
	require.NoError(t, err)
	require.NotEmpty(t, credential)
	assert.NotEqual(t, "changeme", credential)

	match, err := hasher.Verify("changeme", credential)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Verify("wrong", credential)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestArgon2HasherUniqueSalts(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("changeme")
	require.NoError(t, err)

	second, err := hasher.Hash("changeme")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
