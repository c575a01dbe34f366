package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_HasPrefixAndIsNonEmpty(t *testing.T) {
	id := New("chain-")

	assert.True(t, strings.HasPrefix(id, "chain-"))
	assert.Greater(t, len(id), len("chain-"))
}

func TestNew_ProducesDistinctIDs(t *testing.T) {
	a := New("chain-")
	b := New("chain-")

	assert.NotEqual(t, a, b)
}
