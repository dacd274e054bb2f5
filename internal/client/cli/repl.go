package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/skillboard/internal/client/client"
	"github.com/dmitrijs2005/skillboard/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context, skill string) error
	Show(ctx context.Context, id string) error
	Me(ctx context.Context) error
	Edit(ctx context.Context) error
	AddSkill(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	Logout(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, (l)ist [skill], show <id>, exit"
	helpMember = "Available commands: (l)ist [skill], show <id>, me, edit, addskill, avatar [file], logout, exit"
)

// runREPL reads one command per line from r and dispatches it to a. The loop
// exits on EOF or when the user types "exit" or "quit".
//
//	Anyone:
//	  - help              show available commands
//	  - register, login   start a session
//	  - list [skill]      list profiles, optionally filtered by skill
//	  - show <id>         show one profile
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - me                show your own profile
//	  - edit              edit profile fields
//	  - addskill          add a skill to your profile
//	  - avatar [file]     upload an avatar image
//	  - logout            end the session
//
// Command errors are reported to the user and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sb> %s > ", statusFn()))
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if needsSession(cmd) && !a.isLoggedIn() {
			printlnFn("Please register or login first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "l", "list":
			report(a.List(ctx, strings.Join(args, " ")))

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			report(a.Show(ctx, args[0]))

		case "me":
			report(a.Me(ctx))

		case "edit":
			report(a.Edit(ctx))

		case "addskill":
			report(a.AddSkill(ctx))

		case "avatar":
			report(a.Avatar(ctx, strings.Join(args, " ")))

		case "logout":
			report(a.Logout(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func needsSession(cmd string) bool {
	switch cmd {
	case "me", "edit", "addskill", "avatar", "logout":
		return true
	}
	return false
}

func report(err error) {
	if err == nil {
		return
	}
	printlnFn("Error:", describe(err))
}

func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateAccount):
		return "an account with this email already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, client.ErrUnauthorized):
		return "session is no longer valid, please login again"
	case errors.Is(err, common.ErrProfileNotFound):
		return "profile not found"
	case errors.Is(err, common.ErrStorageNotConfigured):
		return "avatar uploads are not enabled on this server"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	default:
		return err.Error()
	}
}
