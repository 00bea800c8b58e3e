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
	Whoami(ctx context.Context) error
	Fetch(ctx context.Context) error
	Set(ctx context.Context, raw string) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the LoginKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	help            show available commands
//	whoami | w      print the current login user
//	fetch           refresh the login user from the backend
//	set <name>      set the login user by name
//	set {json}      set the full login user record
//	logout          drop the login user and its stored copy
//	ping            check backend health
//	stats           print collected metrics
//	exit | quit     leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lk %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			cmd, rest = line[:i], line[i+1:]
		}
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "help":
			printlnFn("Available commands: whoami, fetch, set, logout, ping, stats, exit")

		case "w", "whoami":
			_ = a.Whoami(ctx)

		case "fetch":
			_ = a.Fetch(ctx)

		case "set":
			_ = a.Set(ctx, rest)

		case "logout":
			_ = a.Logout(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
