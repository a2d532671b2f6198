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

func TestRemoveString(t *testing.T) {
	hay := []string{"a", "b", "a"}
	assert.Equal(t, []string{"b"}, RemoveString(hay, "a"))
	assert.Equal(t, []string{"a", "b", "a"}, hay)
	assert.Equal(t, []string{"a", "b", "a"}, RemoveString(hay, "c"))
	assert.Equal(t, []string{}, RemoveString(nil, "a"))
}
