package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

type widget struct {
	ID       int64
	PublicID string
	Name     string
	Active   bool
}

func newWidgetCollection() *Collection[widget] {
	return NewCollection(
		func(w *widget) (int64, string) { return w.ID, w.PublicID },
		func(w *widget, id int64, publicID string) {
			w.ID = id
			w.PublicID = publicID
		},
	)
}

func TestCollectionInsertAssignsIdentity(t *testing.T) {
	c := newWidgetCollection()

	first := c.Insert(widget{Name: "one"})
	second := c.Insert(widget{Name: "two"})

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.NotEmpty(t, first.PublicID)
	assert.NotEqual(t, first.PublicID, second.PublicID)
}

func TestCollectionInsertKeepsSeededPublicID(t *testing.T) {
	c := newWidgetCollection()
	got := c.Insert(widget{PublicID: "wid-001", Name: "seeded"})
	assert.Equal(t, "wid-001", got.PublicID)
	assert.Equal(t, int64(1), got.ID)
}

func TestCollectionFind(t *testing.T) {
	c := newWidgetCollection()
	c.Insert(widget{PublicID: "wid-001", Name: "one"})

	got, ok := c.Find("wid-001")
	require.True(t, ok)
	assert.Equal(t, "one", got.Name)

	_, ok = c.Find("missing")
	assert.False(t, ok)
}

func TestCollectionMutatePreservesIdentity(t *testing.T) {
	c := newWidgetCollection()
	c.Insert(widget{PublicID: "wid-001", Name: "before"})

	got, err := c.Mutate("wid-001", func(w *widget) error {
		w.Name = "after"
		w.ID = 999
		w.PublicID = "hijacked"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "wid-001", got.PublicID)
}

func TestCollectionMutatePropagatesError(t *testing.T) {
	c := newWidgetCollection()
	c.Insert(widget{PublicID: "wid-001", Name: "one"})

	boom := errors.New("boom")
	_, err := c.Mutate("wid-001", func(*widget) error { return boom })
	assert.ErrorIs(t, err, boom)

	got, _ := c.Find("wid-001")
	assert.Equal(t, "one", got.Name, "a failed mutation must leave the record as found")
}

func TestCollectionMutateNotFound(t *testing.T) {
	c := newWidgetCollection()
	_, err := c.Mutate("missing", func(*widget) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCollectionReplace(t *testing.T) {
	c := newWidgetCollection()
	c.Insert(widget{PublicID: "wid-001", Name: "old", Active: true})

	got, err := c.Replace("wid-001", widget{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "wid-001", got.PublicID)
}

func TestCollectionRemove(t *testing.T) {
	c := newWidgetCollection()
	c.Insert(widget{PublicID: "wid-001"})
	c.Insert(widget{PublicID: "wid-002"})

	require.NoError(t, c.Remove("wid-001"))
	assert.Equal(t, 1, c.Len())
	_, ok := c.Find("wid-001")
	assert.False(t, ok)

	assert.ErrorIs(t, c.Remove("wid-001"), apperrors.ErrNotFound)
}

func TestCollectionCount(t *testing.T) {
	c := newWidgetCollection()
	c.Insert(widget{Active: true})
	c.Insert(widget{Active: false})
	c.Insert(widget{Active: true})

	assert.Equal(t, 2, c.Count(func(w widget) bool { return w.Active }))
	assert.Equal(t, 3, c.Len())
}

func TestCollectionSearch(t *testing.T) {
	c := newWidgetCollection()
	c.Insert(widget{Name: "Carla"})
	c.Insert(widget{Name: "ana"})
	c.Insert(widget{Name: "Ana María"})

	schema := search.Schema[widget]{
		SortKeys: map[string]func(widget) search.Value{
			"name": func(w widget) search.Value { return search.String(w.Name) },
		},
	}
	page := c.Search(func(w widget) bool {
		return search.MatchText("ana", w.Name)
	}, schema, search.Params{SortBy: "name", Size: 10})

	require.Len(t, page.Content, 2)
	assert.Equal(t, "ana", page.Content[0].Name)
	assert.Equal(t, "Ana María", page.Content[1].Name)
	assert.Equal(t, 2, page.TotalElements)
}
