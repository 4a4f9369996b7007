package dao

import (
	"testing"

	"github.com/haierkeys/simple-notes-service/internal/model"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreate(t *testing.T) {
	s := NewStore()

	n := s.Create(model.Note{Title: "Einkauf", Content: "Milch, Brot", User: "anna"})

	dump.P(n)

	assert.Equal(t, int64(1), n.ID)
	assert.Equal(t, "Einkauf", n.Title)
	assert.Equal(t, "Milch, Brot", n.Content)
	assert.Equal(t, "anna", n.User)

	got, ok := s.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestStoreIDsNeverReused(t *testing.T) {
	s := NewStore()

	first := s.Create(model.Note{User: "anna"})
	require.True(t, s.Delete(first.ID))

	second := s.Create(model.Note{User: "anna"})
	assert.Greater(t, second.ID, first.ID)
}

func TestStoreListByUser(t *testing.T) {
	s := NewStore()

	s.Create(model.Note{Title: "a", User: "anna"})
	s.Create(model.Note{Title: "b", User: "bernd"})
	s.Create(model.Note{Title: "c", User: "anna"})

	list := s.ListByUser("anna")
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Title)
	assert.Equal(t, "c", list[1].Title)
	assert.Less(t, list[0].ID, list[1].ID)

	assert.Empty(t, s.ListByUser("carla"))
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore()

	n := s.Create(model.Note{Title: "alt", Content: "x", User: "anna"})

	updated, ok := s.Update(n.ID, func(m *model.Note) {
		m.Title = "neu"
		m.ID = 999 // must not stick
	})
	require.True(t, ok)
	assert.Equal(t, n.ID, updated.ID)
	assert.Equal(t, "neu", updated.Title)
	assert.Equal(t, "x", updated.Content)

	_, ok = s.Update(12345, func(m *model.Note) {})
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()

	n := s.Create(model.Note{User: "anna"})
	require.Equal(t, 1, s.Count())

	assert.True(t, s.Delete(n.ID))
	assert.Equal(t, 0, s.Count())

	_, ok := s.Get(n.ID)
	assert.False(t, ok)

	assert.False(t, s.Delete(n.ID))
}
