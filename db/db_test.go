package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStringIsStable(t *testing.T) {
	t.Parallel()
	a := HashString("same text")
	b := HashString("same text")
	c := HashString("different text")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex-encoded SHA-256
}
