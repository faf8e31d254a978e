package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Names(ctx context.Context) error
}

// protected lists the commands that need a stored token.
var protected = map[string]bool{
	"l": true, "list": true, "refresh": true,
	"page": true, "next": true, "prev": true,
	"search": true, "edit": true, "delete": true,
	"logout": true,
}

// runREPL starts a simple read–eval–print loop for the userhub CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - login            authenticate
//	  - names            show the display name tables
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - list | l         show the current page
//	  - refresh          re-fetch the current page
//	  - page <n>         go to page n
//	  - next | prev      go to the adjacent page
//	  - search [term]    filter the page; no term clears the filter
//	  - edit <id>        edit a user on the page
//	  - delete <id>      delete a user on the page
//	  - names            show the display name tables
//	  - logout           log out
//	  - exit | quit      leave the program
//
// Errors returned by command handlers are ignored here; the services have
// already shown them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("userhub %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if protected[cmd] && !a.isLoggedIn(ctx) {
			printlnFn(services.MsgNotAuthenticated + " (type 'login')")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist, refresh, page <n>, next, prev, search [term], edit <id>, delete <id>, names, logout, exit")
			} else {
				printlnFn("Available commands: login, names, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "page":
			_ = a.Page(ctx, args)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "names":
			_ = a.Names(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
