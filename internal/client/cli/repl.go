package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	SwitchTab(ctx context.Context, name string) error
	Classify(ctx context.Context) error
	Feedback(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Retrain(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
	flushNotifications()
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: tab <dashboard|classify|emails|upload|admin>, refresh, " +
		"classify, feedback, upload [file], retrain, show <id>, logout, exit"
)

// runREPL reads one command per line and dispatches it to a. Handlers
// report their own failures through the notification queue, which is
// flushed after every line. It returns on EOF, exit or quit.
//
//	Logged out:
//	  help, register, login, exit | quit
//
//	Logged in:
//	  help
//	  tab <name>        switch tab and load its data
//	  refresh           re-enter the active tab
//	  classify          score one email
//	  feedback          correct the category of the last scored email
//	  upload [file]     submit a JSON batch from file or pasted text
//	  retrain           retrain the classifier (admins only)
//	  show <id>         show one stored email
//	  logout
//	  exit | quit
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mt %s >", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		dispatch(ctx, a, cmd, args)
		a.flushNotifications()
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	if !a.isLoggedIn() {
		switch cmd {
		case "help":
			printlnFn(helpLoggedOut)
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		default:
			printlnFn("Log in first (type 'help' for commands)")
		}
		return
	}

	switch cmd {
	case "help":
		printlnFn(helpLoggedIn)

	case "tab", "t":
		if len(args) == 0 {
			printlnFn("Usage: tab <dashboard|classify|emails|upload|admin>")
			return
		}
		_ = a.SwitchTab(ctx, args[0])

	case "refresh", "r":
		_ = a.Refresh(ctx)

	case "classify":
		_ = a.Classify(ctx)

	case "feedback":
		_ = a.Feedback(ctx)

	case "upload":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		_ = a.Upload(ctx, path)

	case "retrain":
		_ = a.Retrain(ctx)

	case "show":
		if len(args) == 0 {
			printlnFn("Usage: show <id>")
			return
		}
		_ = a.Show(ctx, args[0])

	case "logout":
		_ = a.Logout(ctx)

	case "login", "register":
		printlnFn("Already logged in; logout first")

	default:
		printlnFn("Unknown command:", cmd)
	}
}
