package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_Column(t *testing.T) {
	v, err := StringSlice{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	v, err = StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v, "nil slices must write an empty jsonb array, not SQL NULL")

	var s StringSlice
	require.NoError(t, s.Scan([]byte(`["x","y"]`)))
	assert.Equal(t, StringSlice{"x", "y"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)

	assert.Error(t, s.Scan(42))
}

func TestStringMap_Column(t *testing.T) {
	v, err := StringMap{"q1": "a"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"q1":"a"}`, v)

	v, err = StringMap(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `{}`, v)

	var m StringMap
	require.NoError(t, m.Scan(`{"q2":"b"}`))
	assert.Equal(t, StringMap{"q2": "b"}, m)
}
