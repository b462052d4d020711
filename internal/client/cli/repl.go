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
	Analyze(ctx context.Context, path string) error
	Latest(ctx context.Context) error
	History(ctx context.Context) error
	Stats(ctx context.Context) error
	Recommendations(ctx context.Context, generate bool) error
	Summary(ctx context.Context) error
}

// protectedCommands require a logged-in session. The dispatch loop is the
// route guard: a protected command without a session is answered with a
// pointer to login instead of being executed.
var protectedCommands = map[string]struct{}{
	"analyze": {},
	"latest":  {},
	"history": {},
	"stats":   {},
	"recs":    {},
	"summary": {},
	"logout":  {},
}

// runREPL starts a simple read–eval–print loop for the Eye Glaze CLI.
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
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - help            — show available commands
//	  - analyze <file>  — upload an eye photo and run a stress analysis
//	  - latest          — show the most recent analysis
//	  - history         — list past analyses
//	  - stats           — show the aggregate analysis counter
//	  - recs [new]      — show recommendations ("new" forces regeneration)
//	  - summary         — show the health summary with weekly trends
//	  - logout          — log out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eg> %s > ", statusFn()))
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

		if _, protected := protectedCommands[cmd]; protected && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: analyze <file>, latest, history, stats, recs [new], summary, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "analyze":
			if len(args) == 0 {
				printlnFn("Usage: analyze <image-file>")
				continue
			}
			_ = a.Analyze(ctx, args[0])

		case "latest":
			_ = a.Latest(ctx)

		case "history":
			_ = a.History(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "recs":
			generate := len(args) > 0 && args[0] == "new"
			_ = a.Recommendations(ctx, generate)

		case "summary":
			_ = a.Summary(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
