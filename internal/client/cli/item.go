package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
)

// promptID asks for a todo id and parses it.
func (a *App) promptID(prompt string) (int64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Println("Invalid id:", text)
		return 0, common.ErrValidation
	}
	return id, nil
}

// Add collects a todo line and an optional multi-line description and
// appends a new item to the list.
func (a *App) Add(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Enter todo text", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.todoService.Add(ctx, text, description)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Println("Todo text is required")
			return nil
		}
		return err
	}

	fmt.Printf("Added #%d\n", item.ID)
	return nil
}

func printItem(item models.TodoItem) {
	mark := " "
	if item.Completed {
		mark = "x"
	}
	fmt.Printf("%4d. [%s] %s\n", item.ID, mark, item.Text)
	if item.Expanded {
		if item.Description == "" {
			fmt.Println("      (no description)")
		} else {
			fmt.Printf("      %s\n", item.Description)
		}
	}
}

// List prints the current user's todos in display order. Expanded items show
// their description below the task line.
func (a *App) List(ctx context.Context) error {
	items := a.todoService.List()
	if len(items) == 0 {
		fmt.Println("No todos yet — add one!")
		return nil
	}
	for _, item := range items {
		printItem(item)
	}
	return nil
}

// Edit runs the interactive edit flow: pick an item, enter new text and
// description, save. Typing "/cancel" as the new text leaves edit mode
// without changing anything.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptID("Enter todo id to edit")
	if err != nil {
		return err
	}

	item, ok := a.todoService.Get(id)
	if !ok {
		fmt.Println("No todo with that id")
		return nil
	}

	a.todoService.StartEdit(id)

	fmt.Printf("Editing #%d: %s\n", item.ID, item.Text)
	text, err := getSimpleText(a.reader, "New text (or /cancel)", os.Stdout)
	if err != nil {
		return err
	}
	if text == "/cancel" {
		a.todoService.CancelEdit()
		fmt.Println("Edit cancelled")
		return nil
	}

	description, err := GetMultiline(a.reader, "New description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.todoService.SaveEdit(ctx, id, text, description); err != nil {
		return err
	}

	fmt.Printf("Saved #%d\n", id)
	return nil
}

// Delete removes an item after an explicit confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter todo id to delete")
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Delete this todo? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return nil
	}

	return a.todoService.Delete(ctx, id)
}

// Toggle flips an item's completion flag.
func (a *App) Toggle(ctx context.Context) error {
	id, err := a.promptID("Enter todo id to toggle")
	if err != nil {
		return err
	}
	return a.todoService.ToggleCompleted(ctx, id)
}

// Expand folds or unfolds an item's description and re-prints the item.
func (a *App) Expand(ctx context.Context) error {
	id, err := a.promptID("Enter todo id to expand")
	if err != nil {
		return err
	}

	if !a.todoService.ToggleExpanded(id) {
		fmt.Println("No todo with that id")
		return nil
	}

	if item, ok := a.todoService.Get(id); ok {
		printItem(item)
	}
	return nil
}

// Show prints a single item with its description regardless of the
// expansion state.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptID("Enter todo id to show")
	if err != nil {
		return err
	}

	item, ok := a.todoService.Get(id)
	if !ok {
		fmt.Println("No todo with that id")
		return nil
	}

	mark := " "
	if item.Completed {
		mark = "x"
	}
	fmt.Printf("#%d [%s] %s\n", item.ID, mark, item.Text)
	if item.Description == "" {
		fmt.Println("(no description)")
	} else {
		fmt.Println(item.Description)
	}
	return nil
}
