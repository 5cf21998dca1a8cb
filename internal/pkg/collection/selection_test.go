package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_SelectAllAndClear(t *testing.T) {
	s := NewSelection()

	s.SelectAll([]string{"a", "b", "c"}, true)
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	s.SelectAll([]string{"a", "b", "c"}, false)
	assert.Equal(t, 0, s.Len())
}

func TestSelection_Toggle(t *testing.T) {
	s := NewSelection()

	s.Toggle("a")
	assert.True(t, s.Has("a"))

	s.Toggle("a")
	assert.False(t, s.Has("a"))
}

func TestSelection_Intersect(t *testing.T) {
	s := NewSelection()
	s.SelectAll([]string{"a", "b", "c", "d"}, true)

	// the loaded list was replaced by a filtered subset
	s.Intersect([]string{"b", "d", "e"})

	assert.Equal(t, []string{"b", "d"}, s.IDs())
	assert.False(t, s.Has("a"))
	assert.False(t, s.Has("e"))
}

func TestSelection_IntersectEmptyList(t *testing.T) {
	s := NewSelection()
	s.SelectAll([]string{"a", "b"}, true)

	s.Intersect(nil)

	assert.Equal(t, 0, s.Len())
}

func TestSelection_Remove(t *testing.T) {
	s := NewSelection()
	s.SelectAll([]string{"a", "b", "c"}, true)

	s.Remove("a", "c")

	assert.Equal(t, []string{"b"}, s.IDs())
}
