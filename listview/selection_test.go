package listview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSelectsAndDeselects(t *testing.T) {
	sel := NewSelection()

	sel.Toggle("a")
	sel.Toggle("b")
	assert.True(t, sel.Contains("a"))
	assert.Equal(t, []string{"a", "b"}, sel.IDs())

	sel.Toggle("a")
	assert.False(t, sel.Contains("a"))
	assert.Equal(t, []string{"b"}, sel.IDs())
}

func TestSelectAllVisibleScopedToView(t *testing.T) {
	sel := NewSelection()

	// "x" is filtered out of the current view and must not be selected
	sel.SelectAllVisible([]string{"a", "b", "c"})

	assert.Equal(t, 3, sel.Len())
	assert.False(t, sel.Contains("x"))
}

func TestSelectAllVisibleIdempotent(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("b")

	sel.SelectAllVisible([]string{"a", "b", "c"})
	sel.SelectAllVisible([]string{"a", "b", "c"})

	assert.Equal(t, 3, sel.Len())
	assert.Equal(t, []string{"b", "a", "c"}, sel.IDs())
}

func TestSelectionSurvivesRefiltering(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	sel.Toggle("b")

	// Narrowing the view to only "b" hides "a" but does not deselect it
	sel.SelectAllVisible([]string{"b"})

	assert.True(t, sel.Contains("a"))
	assert.Equal(t, 2, sel.Len())
}

func TestClearIdempotent(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")

	sel.Clear()
	sel.Clear()

	assert.Equal(t, 0, sel.Len())
	assert.Empty(t, sel.IDs())
}

func TestDispatchHandsIDsToResolverAndClears(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	sel.Toggle("b")

	var gotAction string
	var gotIDs []string
	err := sel.Dispatch(ActionDelete, func(action string, ids []string) error {
		gotAction = action
		gotIDs = ids
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, ActionDelete, gotAction)
	assert.Equal(t, []string{"a", "b"}, gotIDs)
	assert.Equal(t, 0, sel.Len())
}

func TestDispatchClearsEvenWhenResolverFails(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")

	resolverErr := errors.New("export failed")
	err := sel.Dispatch(ActionExport, func(action string, ids []string) error {
		return resolverErr
	})

	assert.ErrorIs(t, err, resolverErr)
	assert.Equal(t, 0, sel.Len())
}

func TestDispatchRejectsUnknownAction(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")

	called := false
	err := sel.Dispatch("archive", func(action string, ids []string) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.False(t, called)
	// Unknown actions leave the selection intact
	assert.Equal(t, 1, sel.Len())
}
