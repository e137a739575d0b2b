package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 0, ClampLevel(-5))
	assert.Equal(t, 0, ClampLevel(101))
	assert.Equal(t, 0, ClampLevel(150))
	assert.Equal(t, 0, ClampLevel(0))
	assert.Equal(t, 50, ClampLevel(50))
	assert.Equal(t, 100, ClampLevel(100))
}
