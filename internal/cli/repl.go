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
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	AddNote(ctx context.Context) error
	EditNote(ctx context.Context) error
	DeleteNote(ctx context.Context) error
	List(ctx context.Context, query string) error
	ToggleSort(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the notekeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands when not logged in: help, register, login, exit.
// Commands when logged in: help, add, edit, delete, list [query], sort,
// profile, editprofile, logout, exit.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("notes %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, edit, delete, (l)ist [query], sort, profile, editprofile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "add":
			_ = a.AddNote(ctx)

		case "edit":
			_ = a.EditNote(ctx)

		case "delete":
			_ = a.DeleteNote(ctx)

		case "l", "list":
			_ = a.List(ctx, strings.Join(args, " "))

		case "sort":
			_ = a.ToggleSort(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
