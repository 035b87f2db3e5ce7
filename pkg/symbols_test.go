package tinylang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolMap(t *testing.T) {
	m := NewSymbolMap()

	assert.False(t, m.Exists("x"))
	assert.Equal(t, 0, m.Size())

	m.Add("x")
	m.Add("y")

	assert.True(t, m.Exists("x"))
	assert.Equal(t, 2, m.Size())

	// Labels follow declaration order.
	assert.Equal(t, "V0", m.Label("x"))
	assert.Equal(t, "V1", m.Label("y"))
	assert.Equal(t, "V1", m.LabelAt(1))
}

func TestFuncMap(t *testing.T) {
	m := NewFuncMap()

	assert.False(t, m.Exists("f"))

	m.Add("f")
	m.SetParams("f", []string{"a", "b"})
	m.Add("g")
	m.SetParams("g", nil)

	assert.True(t, m.Exists("f"))
	assert.Equal(t, "FUNC0", m.Label("f"))
	assert.Equal(t, "FUNC1", m.Label("g"))
	assert.Equal(t, []string{"a", "b"}, m.Params("f"))
	assert.Empty(t, m.Params("g"))
}

func TestParamOffset(t *testing.T) {
	params := []string{"a", "b", "c"}

	off, ok := paramOffset(params, "a")
	assert.True(t, ok)
	assert.Equal(t, 24, off)

	off, ok = paramOffset(params, "c")
	assert.True(t, ok)
	assert.Equal(t, 8, off)

	_, ok = paramOffset(params, "d")
	assert.False(t, ok)

	_, ok = paramOffset(nil, "a")
	assert.False(t, ok)
}

func TestLabelSet(t *testing.T) {
	s := NewLabelSet()

	assert.False(t, s.Exists("loop"))

	s.Add("loop")
	assert.True(t, s.Exists("loop"))
}

func TestStringPool(t *testing.T) {
	p := NewStringPool()

	assert.Equal(t, 0, p.Intern("hi"))
	assert.Equal(t, 1, p.Intern("bye"))

	// Interning is idempotent.
	assert.Equal(t, 0, p.Intern("hi"))

	assert.Equal(t, "S0", p.Label(0))
	assert.Equal(t, []string{"hi", "bye"}, p.Texts())
}
