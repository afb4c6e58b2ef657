package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsOrder(t *testing.T) {
	ps := NewParams().Append("a", 1).Append("b", 2).Append("a", 3)
	assert.Equal(t, 3, ps.Count())
	assert.Equal(t, "a", ps.Name(0))
	assert.Equal(t, "b", ps.Name(1))
	assert.Equal(t, 2, ps.ValueAt(1))

	// first entry appended under a name wins
	val, found := ps.Value("a")
	assert.True(t, found)
	assert.Equal(t, 1, val)

	_, found = ps.Value("missing")
	assert.False(t, found)

	assert.Equal(t, "", ps.Name(5))
	assert.Nil(t, ps.ValueAt(-1))
}

func TestListOf(t *testing.T) {
	items, ok := ListOf([]int{10, 20})
	assert.True(t, ok)
	assert.Equal(t, []any{10, 20}, items)

	items, ok = ListOf([]any{1, "two"})
	assert.True(t, ok)
	assert.Len(t, items, 2)

	_, ok = ListOf("text")
	assert.False(t, ok)
	_, ok = ListOf([]byte("blob"))
	assert.False(t, ok)
	_, ok = ListOf(nil)
	assert.False(t, ok)
	_, ok = ListOf(7)
	assert.False(t, ok)
}

func TestCoercion(t *testing.T) {
	assert.Equal(t, "", AsString(nil))
	assert.Equal(t, "7", AsString(7))
	assert.Equal(t, "x", AsString("x"))

	assert.False(t, AsBool(nil))
	assert.True(t, AsBool(true))

	assert.Equal(t, 0, AsInt(nil))
	assert.Equal(t, 4, AsInt(4))
}
