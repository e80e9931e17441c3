package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	v, err := JSON{"rows": 3}.Value()
	require.NoError(t, err)

	var got JSON
	require.NoError(t, got.Scan(v))
	assert.EqualValues(t, 3, got["rows"])

	require.NoError(t, got.Scan(`{"file":"a.csv"}`))
	assert.Equal(t, "a.csv", got["file"])
}

func TestJSONEmptyAndUnsupported(t *testing.T) {
	v, err := JSON{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var got JSON
	require.NoError(t, got.Scan(nil))
	assert.Nil(t, got)
	assert.Error(t, got.Scan(42))
}
