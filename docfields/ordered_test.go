package docfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := NewOrderedMap(
		Item("zeta", "z"),
		Item("alpha", "a"),
		Item("mu", "m"),
	)

	assert.Equal(t, []string{"zeta", "alpha", "mu"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	var visited []string
	for k, v := range m.All() {
		visited = append(visited, k+"="+v)
	}

	assert.Equal(t, []string{"zeta=z", "alpha=a", "mu=m"}, visited)
}

func TestOrderedMap_OverwriteKeepsPosition(t *testing.T) {
	m := NewDescriptions(Item("a", "1"), Item("b", "2"))
	m.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestOrderedMap_Nil(t *testing.T) {
	var m *Descriptions

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.Nil(t, m.Entries())
	assert.Nil(t, m.Clone())
	assert.False(t, m.Has("x"))

	for range m.All() {
		t.Fatal("nil map must not yield")
	}
}

func TestOrderedMap_ZeroValue(t *testing.T) {
	var m OrderedMap[int]
	m.Set("one", 1).Set("two", 2)

	assert.Equal(t, []string{"one", "two"}, m.Keys())
}

func TestOrderedMap_CloneIsIndependent(t *testing.T) {
	m := NewDescriptions(Item("a", "1"))
	c := m.Clone()
	c.Set("b", "2")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestOrderedMap_BreakStopsIteration(t *testing.T) {
	m := NewDescriptions(Item("a", "1"), Item("b", "2"), Item("c", "3"))

	count := 0
	for range m.All() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}

func TestOrderedMap_MarshalYAML(t *testing.T) {
	m := NewDescriptions(Item("zeta", "last letter"), Item("alpha", "first letter"))

	out, err := yaml.Marshal(m)
	assert.NoError(t, err)
	assert.Equal(t, "zeta: last letter\nalpha: first letter\n", string(out))
}
