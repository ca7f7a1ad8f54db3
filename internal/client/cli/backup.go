package cli

import (
	"context"
	"fmt"
	"os"
)

// Backup exports the current user's list to a fresh file in the configured
// backup directory.
func (a *App) Backup(ctx context.Context) error {
	path, err := a.backupService.Export(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Backup saved to:", path)
	return nil
}

// Restore replaces the current user's list with the contents of a backup
// file, after schema validation, and reloads the in-memory list.
func (a *App) Restore(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter backup file path", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.backupService.Import(ctx, path); err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.todoService.Load(ctx); err != nil {
		return err
	}

	fmt.Println("Restored from:", path)
	return nil
}
