package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrToInt64(t *testing.T) {
	n, err := StrToInt64("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = StrToInt64("abc")
	assert.Error(t, err)

	_, err = StrToInt64("")
	assert.Error(t, err)
}

func TestStrToIntDefault(t *testing.T) {
	assert.Equal(t, 3, StrToIntDefault("3", 1))
	assert.Equal(t, 1, StrToIntDefault("", 1))
	assert.Equal(t, 1, StrToIntDefault("two", 1))
	assert.Equal(t, -5, StrToIntDefault("-5", 1))
}
