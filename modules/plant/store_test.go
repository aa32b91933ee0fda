package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/seedling/modules/garden"
)

func TestStore_BackReference(t *testing.T) {
	t.Parallel()
	s := NewStore()

	require.NoError(t, s.Put(&Plant{ID: "basil", Name: "Basil", Garden: "front_lawn"}))

	p, ok := s.Get("basil")
	require.True(t, ok)
	assert.Equal(t, garden.ID("front_lawn"), p.Garden, "a plant must report the garden it belongs to")
}

func TestStore_DuplicateID(t *testing.T) {
	t.Parallel()
	s := NewStore()

	require.NoError(t, s.Put(&Plant{ID: "basil", Name: "Basil", Garden: "front_lawn"}))
	err := s.Put(&Plant{ID: "basil", Name: "Basil II", Garden: "front_lawn"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `plant "basil" already exists`)
}

func TestStore_MembersDerivedByQuery(t *testing.T) {
	t.Parallel()
	s := NewStore()

	require.NoError(t, s.Put(&Plant{ID: "basil", Name: "Basil", Garden: "front_lawn"}))
	require.NoError(t, s.Put(&Plant{ID: "fern", Name: "Fern", Garden: "back_lawn"}))
	require.NoError(t, s.Put(&Plant{ID: "cucumber", Name: "Cucumber", Garden: "front_lawn"}))

	members := s.Members("front_lawn")
	require.Len(t, members, 2)
	assert.Equal(t, "Basil", members[0].Name, "members must come back in insertion order")
	assert.Equal(t, "Cucumber", members[1].Name)

	assert.Empty(t, s.Members("rooftop"), "a garden with no plants has no members")
	assert.Equal(t, 3, s.Len())
}
