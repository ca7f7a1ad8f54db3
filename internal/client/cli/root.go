package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Root restores a persisted session if one exists and then blocks in the
// REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to gophtodo (type 'help' for commands)")

	userName, err := a.authService.CurrentUser(ctx)
	if err != nil {
		a.logger.Error(ctx, "error restoring session", "error", err)
	}
	if userName != "" {
		a.userName = userName
		if err := a.todoService.Load(ctx); err != nil {
			a.logger.Error(ctx, "error loading todos", "error", err)
		}
		fmt.Printf("Welcome back, %s!\n", userName)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
