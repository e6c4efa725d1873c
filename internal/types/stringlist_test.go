package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_BareScalarBecomesSingleElement(t *testing.T) {
	t.Parallel()
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"tag-1"`), &l))
	assert.Equal(t, StringList{"tag-1"}, l)
}

func TestStringList_NumberScalarKeepsDigits(t *testing.T) {
	t.Parallel()
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`12345`), &l))
	assert.Equal(t, StringList{"12345"}, l)
}

func TestStringList_ArrayPassesThrough(t *testing.T) {
	t.Parallel()
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &l))
	assert.Equal(t, StringList{"a", "b"}, l)
}

func TestStringList_MixedArrayCoercesNumbers(t *testing.T) {
	t.Parallel()
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`["a", 7]`), &l))
	assert.Equal(t, StringList{"a", "7"}, l)
}

func TestStringList_NullIsEmpty(t *testing.T) {
	t.Parallel()
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`null`), &l))
	assert.Empty(t, l)
}

func TestStringList_ObjectRejected(t *testing.T) {
	t.Parallel()
	var l StringList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &l))
}
