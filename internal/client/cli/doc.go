// Package cli provides the interactive gophtodo command-line client.
//
// It wires configuration, local storage, and the credential/todo services
// into an interactive REPL. Typical flow: restore a persisted session if one
// exists (or prompt for credentials), then execute user commands against the
// current user's todo list.
//
// Key features:
//   - Register / Login / Logout (session survives restarts)
//   - Add / edit / delete todos, toggle completion, unfold descriptions
//   - Backup and restore the list as a validated JSON file
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
