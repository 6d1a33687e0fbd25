package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/luca/internal/client/client"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a recording stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Accounts(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Health(ctx context.Context) error
	Assess(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: register, login, forgot, reset, assess, health, exit"
	helpSignedIn  = "Available commands: me, accounts, delete-account, logout, assess, health, exit"
)

// runREPL reads one command per line from in and dispatches it to a.
// Handler errors are printed and the loop carries on. It returns on EOF,
// "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("luca %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var cmdErr error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "me":
			cmdErr = a.Me(ctx)
		case "delete-account":
			cmdErr = a.DeleteAccount(ctx)
		case "accounts":
			cmdErr = a.Accounts(ctx)
		case "forgot":
			cmdErr = a.Forgot(ctx)
		case "reset":
			cmdErr = a.Reset(ctx)
		case "health":
			cmdErr = a.Health(ctx)
		case "assess":
			cmdErr = a.Assess(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describe(cmdErr))
		}
	}
}

// describe turns a command error into the line shown to the user. Backend
// failures go through the client's message rules; local validation errors
// are already readable.
func describe(err error) string {
	var ce *client.Error
	if errors.As(err, &ce) {
		return client.UserMessage(err)
	}
	return err.Error()
}
