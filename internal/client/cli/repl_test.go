package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Add(ctx context.Context) error  { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Edit(ctx context.Context) error { f.calls = append(f.calls, "edit"); return nil }
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) Toggle(ctx context.Context) error {
	f.calls = append(f.calls, "toggle")
	return nil
}
func (f *fakeExec) Expand(ctx context.Context) error {
	f.calls = append(f.calls, "expand")
	return nil
}
func (f *fakeExec) Show(ctx context.Context) error { f.calls = append(f.calls, "show"); return nil }
func (f *fakeExec) Backup(ctx context.Context) error {
	f.calls = append(f.calls, "backup")
	return nil
}
func (f *fakeExec) Restore(ctx context.Context) error {
	f.calls = append(f.calls, "restore")
	return nil
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.calls = append(f.calls, "deleteaccount")
	return nil
}

func runScript(t *testing.T, f *fakeExec, script string) []string {
	t.Helper()

	origPrintln := printlnFn
	t.Cleanup(func() { printlnFn = origPrintln })

	var output []string
	printlnFn = func(a ...any) (int, error) {
		for _, item := range a {
			if s, ok := item.(string); ok {
				output = append(output, s)
			}
		}
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return output
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "register\nlogin\nadd\nl\nedit\ndel\ndone\nexpand\nshow\nbackup\nrestore\nlogout\nexit\n")

	assert.Equal(t, []string{
		"register", "login", "add", "list", "edit", "delete",
		"toggle", "expand", "show", "backup", "restore", "logout",
	}, f.calls)
}

func TestRunREPL_CommandAliases(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "list\ndelete\ntoggle\nquit\n")
	assert.Equal(t, []string{"list", "delete", "toggle"}, f.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	f := &fakeExec{}
	output := runScript(t, f, "frobnicate\nexit\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, output, "Unknown command:")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	f := &fakeExec{}
	output := runScript(t, f, "help\nlogin\nhelp\nexit\n")

	var helps []string
	for _, line := range output {
		if strings.HasPrefix(line, "Available commands:") {
			helps = append(helps, line)
		}
	}
	assert.Len(t, helps, 2)
	assert.Contains(t, helps[0], "register")
	assert.NotContains(t, helps[0], "add")
	assert.Contains(t, helps[1], "add")
	assert.Contains(t, helps[1], "deleteaccount")
}

func TestRunREPL_EmptyLinesIgnoredAndEOFExits(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "\n\n\nadd\n")
	assert.Equal(t, []string{"add"}, f.calls)
}
