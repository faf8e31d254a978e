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
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) List(context.Context) error                 { return f.record("list", nil) }
func (f *fakeExec) Refresh(context.Context) error              { return f.record("refresh", nil) }
func (f *fakeExec) Page(_ context.Context, a []string) error   { return f.record("page", a) }
func (f *fakeExec) Next(context.Context) error                 { return f.record("next", nil) }
func (f *fakeExec) Prev(context.Context) error                 { return f.record("prev", nil) }
func (f *fakeExec) Search(_ context.Context, a []string) error { return f.record("search", a) }
func (f *fakeExec) Edit(_ context.Context, a []string) error   { return f.record("edit", a) }
func (f *fakeExec) Delete(_ context.Context, a []string) error { return f.record("delete", a) }
func (f *fakeExec) Names(context.Context) error                { return f.record("names", nil) }

func runScript(exec *fakeExec, lines ...string) {
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, r)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runScript(exec,
		"help",
		"login",
		"help",
		"l",
		"page 2",
		"next",
		"prev",
		"search divya chopra",
		"edit 7",
		"delete 7",
		"refresh",
		"names",
		"foobar",
		"exit",
		"list",
	)

	assert.Equal(t, []string{"login", "list", "page", "next", "prev", "search", "edit", "delete", "refresh", "names"}, exec.calls)
	assert.Equal(t, []string{"2"}, exec.args[2])
	assert.Equal(t, []string{"divya", "chopra"}, exec.args[5])
	assert.Contains(t, out.String(), "Available commands: login, names, exit")
	assert.Contains(t, out.String(), "Available commands: (l)ist")
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_ProtectedCommandsNeedLogin(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runScript(exec, "list", "edit 3", "logout", "names", "quit")

	assert.Equal(t, []string{"names"}, exec.calls)
	assert.Equal(t, 3, strings.Count(out.String(), "Please sign in first"))
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runScript(exec, "", "   ", "list")

	assert.Equal(t, []string{"list"}, exec.calls)
}
