package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValue(t *testing.T) {
	k, v, ok := KeyValue("tag_name=go=fast")
	assert.True(t, ok)
	assert.Equal(t, "tag_name", k)
	assert.Equal(t, "go=fast", v)

	k, v, ok = KeyValue("Accept:json", ':')
	assert.True(t, ok)
	assert.Equal(t, "Accept", k)
	assert.Equal(t, "json", v)

	_, _, ok = KeyValue("nothing")
	assert.False(t, ok)
}

func TestValue(t *testing.T) {
	assert.Equal(t, float64(3), Value("3"))
	assert.Equal(t, true, Value("true"))
	assert.Equal(t, []any{float64(1), float64(2)}, Value("[1,2]"))
	assert.Equal(t, "Go", Value("Go"))
	assert.Equal(t, "", Value(""))
	assert.Nil(t, Value("null"))
}

func TestAssignments(t *testing.T) {
	got, err := Assignments([]string{"category_name=Go", " is_top =1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"category_name": "Go", "is_top": float64(1)}, got)

	_, err = Assignments([]string{"=x"})
	assert.Error(t, err)
	_, err = Assignments([]string{"novalue"})
	assert.Error(t, err)
}

func TestIDs(t *testing.T) {
	ids, err := IDs([]string{"5", "12"})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 12}, ids)

	_, err = IDs([]string{"5", "x"})
	assert.Error(t, err)
	_, err = IDs([]string{"0"})
	assert.Error(t, err)
}
