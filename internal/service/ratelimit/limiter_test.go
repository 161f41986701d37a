package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowConsumesTokens(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("news", 3, 0))
	}
	assert.False(t, l.Allow("news", 3, 0), "bucket exhausted")
}

func TestKeysAreIndependent(t *testing.T) {
	l := New()
	assert.True(t, l.Allow("news", 1, 0))
	assert.False(t, l.Allow("news", 1, 0))
	assert.True(t, l.Allow("sentiment", 1, 0))
}
