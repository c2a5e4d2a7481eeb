package cli

import (
	"context"
	"os"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/notes"
)

// AddNote prompts for the note fields and stores a new note.
func (a *App) AddNote(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Please login first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title (optional)", os.Stdout)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Enter note text:", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.notes.Add(title, category, text)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Saved note", note.ID)
	return nil
}

// EditNote prompts for a note id and replacement values for all fields,
// then updates the note.
func (a *App) EditNote(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Please login first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter note id to edit", os.Stdout)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title (optional)", os.Stdout)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Enter note text:", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.notes.Update(id, title, category, text)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Updated note", note.ID)
	return nil
}

// DeleteNote prompts for a note id and removes it. Removing an unknown id
// is a silent no-op.
func (a *App) DeleteNote(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Please login first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter note id to delete", os.Stdout)
	if err != nil {
		return err
	}

	a.notes.Remove(id)
	printlnFn("Deleted.")
	return nil
}

// List prints the notes matching the query in the current sort order.
func (a *App) List(ctx context.Context, query string) error {
	if a.user == nil {
		printlnFn("Please login first.")
		return nil
	}

	result := a.notes.View(query, a.sortOrder)
	if len(result) == 0 {
		printlnFn("No notes added yet.")
		return nil
	}

	for _, note := range result {
		printNote(note)
	}
	return nil
}

// ToggleSort flips the date ordering used by List.
func (a *App) ToggleSort(ctx context.Context) error {
	if a.sortOrder == notes.SortAsc {
		a.sortOrder = notes.SortDesc
		printlnFn("Sort by date added: newest first")
	} else {
		a.sortOrder = notes.SortAsc
		printlnFn("Sort by date added: oldest first")
	}
	return nil
}

func printNote(note notes.Note) {
	printlnFn("---")
	printlnFn("Id:", note.ID)
	if note.Title != "" {
		printlnFn("Title:", note.Title)
	}
	printlnFn("Category:", note.Category)
	printlnFn(note.Text)
	printlnFn("Added:", note.DateAdded.Format(time.RFC1123))
	if !note.UpdatedAt.IsZero() {
		printlnFn("Updated:", note.UpdatedAt.Format(time.RFC1123))
	}
}
