package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = func(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowAll(ctx context.Context) error
	ShowFavorites(ctx context.Context) error
	ShowOwnStories(ctx context.Context) error
	Submit(ctx context.Context) error
	Favorite(ctx context.Context, storyID string) error
	Unfavorite(ctx context.Context, storyID string) error
	Delete(ctx context.Context, storyID string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Commands:
//
//	Always:
//	  - help             — show available commands
//	  - all | a          — refetch and show the story feed
//	  - exit | quit      — leave the program
//
//	Not logged in:
//	  - login            — authenticate
//	  - signup           — create an account
//
//	Logged in:
//	  - favorites | favs — show favorited stories
//	  - mine             — show own stories (with delete affordance)
//	  - submit           — submit a new story
//	  - fav <id>         — favorite a story
//	  - unfav <id>       — unfavorite a story
//	  - delete <id>      — delete an owned story
//	  - logout           — log out
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "hackline %s> ", statusFn())
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
				printlnFn(w, "Available commands: all, favorites, mine, submit, fav <id>, unfav <id>, delete <id>, logout, exit")
			} else {
				printlnFn(w, "Available commands: all, login, signup, exit")
			}

		case "a", "all":
			_ = a.ShowAll(ctx)

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "favs", "favorites":
			_ = a.ShowFavorites(ctx)

		case "mine":
			_ = a.ShowOwnStories(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "fav":
			if len(args) == 0 {
				printlnFn(w, "Usage: fav <id>")
				continue
			}
			_ = a.Favorite(ctx, args[0])

		case "unfav":
			if len(args) == 0 {
				printlnFn(w, "Usage: unfav <id>")
				continue
			}
			_ = a.Unfavorite(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn(w, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn(w, "Bye!")
			return

		default:
			printlnFn(w, "Unknown command:", cmd)
		}
	}
}
