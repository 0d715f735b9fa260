package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	actions := []int{0, 1, 2, 0, 0, 2}

	assert.Equal(t, 3, Count(actions, 0))
	assert.Equal(t, 1, Count(actions, 1))
	assert.Equal(t, 2, Count(actions, 2))
	assert.Equal(t, 0, Count(actions, 3))
}
