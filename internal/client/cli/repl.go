package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Toggle(ctx context.Context) error
	Expand(ctx context.Context) error
	Show(ctx context.Context) error
	Backup(ctx context.Context) error
	Restore(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the gophtodo CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account (logs in on success)
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - add            — add a todo
//	  - list           — list todos
//	  - edit           — edit a todo's text and description
//	  - del            — delete a todo (asks for confirmation)
//	  - done           — toggle completion
//	  - expand         — fold/unfold a description
//	  - show           — show a single todo
//	  - backup         — export the list to a file
//	  - restore        — replace the list from a backup file
//	  - deleteaccount  — remove the account and its data
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("todo %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, edit, del, done, expand, show, backup, restore, deleteaccount, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "del", "delete":
			_ = a.Delete(ctx)

		case "done", "toggle":
			_ = a.Toggle(ctx)

		case "expand":
			_ = a.Expand(ctx)

		case "show":
			_ = a.Show(ctx)

		case "backup":
			_ = a.Backup(ctx)

		case "restore":
			_ = a.Restore(ctx)

		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
