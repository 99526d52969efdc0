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
	CheckIn(ctx context.Context) error
	Summary(ctx context.Context) error
	List(ctx context.Context) error
	AddTestimonial(ctx context.Context) error
	ShowTestimonials(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the WellNest CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Each command maps to exactly one user intent:
//
//	Not logged in:
//	  - help            — show available commands
//	  - register        — create an account (logs in on success)
//	  - login           — authenticate
//	  - testimonials    — show the shared board
//	  - exit | quit     — leave the program
//
//	Logged in, additionally:
//	  - checkin         — record a mood check-in
//	  - summary         — rolling weekly summary with chart
//	  - list            — full check-in history
//	  - testimonial     — add a testimonial
//	  - logout          — log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wn %s> ", statusFn()))
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
				printlnFn("Available commands: checkin, summary, (l)ist, testimonial, testimonials, logout, exit")
			} else {
				printlnFn("Available commands: register, login, testimonials, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "checkin":
			_ = a.CheckIn(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "testimonial":
			_ = a.AddTestimonial(ctx)

		case "testimonials":
			_ = a.ShowTestimonials(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
