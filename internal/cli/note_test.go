package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/notekeeper/internal/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNote_RequiresLogin(t *testing.T) {
	app := newTestApp(t, "title", "cat", "text")

	require.NoError(t, app.AddNote(context.Background()))
	assert.Empty(t, app.notes.View("", notes.SortDesc))
}

func TestAddNote_StoresNote(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice", "My title", "work", "finish report")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.AddNote(ctx))

	got := app.notes.View("", notes.SortDesc)
	require.Len(t, got, 1)
	assert.Equal(t, "My title", got[0].Title)
	assert.Equal(t, "work", got[0].Category)
	assert.Equal(t, "finish report", got[0].Text)
}

func TestAddNote_ValidationErrorSurfaces(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice", "title", "work", "")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))

	err := app.AddNote(ctx)
	require.ErrorIs(t, err, notes.ErrTextRequired)
	assert.Empty(t, app.notes.View("", notes.SortDesc))
}

func TestEditNote_UpdatesFields(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))

	added, err := app.notes.Add("old", "work", "old text")
	require.NoError(t, err)

	edit := newTestApp(t, added.ID, "new", "home", "new text")
	edit.user = app.user
	edit.notes = app.notes

	require.NoError(t, edit.EditNote(ctx))

	got := edit.notes.View("", notes.SortDesc)
	require.Len(t, got, 1)
	assert.Equal(t, "new text", got[0].Text)
	assert.Equal(t, "home", got[0].Category)
}

func TestDeleteNote_UnknownIDIsNoOp(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))

	_, err := app.notes.Add("", "work", "keep me")
	require.NoError(t, err)

	del := newTestApp(t, "unknown-id")
	del.user = app.user
	del.notes = app.notes

	require.NoError(t, del.DeleteNote(ctx))
	assert.Len(t, del.notes.View("", notes.SortDesc), 1)
}

func TestToggleSort_Flips(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, notes.SortDesc, app.sortOrder)
	require.NoError(t, app.ToggleSort(context.Background()))
	assert.Equal(t, notes.SortAsc, app.sortOrder)
	require.NoError(t, app.ToggleSort(context.Background()))
	assert.Equal(t, notes.SortDesc, app.sortOrder)
}

func TestList_PrintsMatches(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))

	_, err := app.notes.Add("", "work", "finish report")
	require.NoError(t, err)
	_, err = app.notes.Add("", "home", "buy milk")
	require.NoError(t, err)

	var lines []string
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}

	require.NoError(t, app.List(ctx, "milk"))
	assert.Contains(t, lines, "buy milk")
	assert.NotContains(t, lines, "finish report")
}
