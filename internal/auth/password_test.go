package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("pw1", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.NoError(t, ComparePassword(hash, "pw1"))
	assert.Error(t, ComparePassword(hash, "pw2"))
}

func TestDummyHashNeverMatches(t *testing.T) {
	for _, pw := range []string{"", "pw1", "hunter2"} {
		assert.Error(t, ComparePassword(dummyHash, pw))
	}
}
