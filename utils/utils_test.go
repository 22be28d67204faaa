package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "a"))
	assert.False(t, ContainsString([]string{}, "a"))
	assert.False(t, ContainsString([]string{"a", "b"}, "c"))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, -3, Min(-3, 0))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(8)
	assert.Equal(t, 8, len(s))
	for _, c := range s {
		assert.True(t, c >= 'a' && c <= 'z')
	}
}
