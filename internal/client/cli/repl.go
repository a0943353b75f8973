package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
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
	WhoAmI(ctx context.Context) error
	Points(ctx context.Context) error
	TextToVideo(ctx context.Context) error
	ImageToVideo(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the VideoGenius CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit". Command prompts read from the same reader, so the REPL
// and the commands share one input buffer.
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - whoami         show the cached profile
//	  - points         fetch the current balance
//	  - t2v            generate a video from a text prompt
//	  - i2v            generate a video from an image
//	  - logout         forget the session
//	  - exit | quit    leave the program
//
// Errors returned by command handlers are rendered for the user here and
// the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vg %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, points, t2v, i2v, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "points":
			cmdErr = a.Points(ctx)

		case "t2v":
			cmdErr = a.TextToVideo(ctx)

		case "i2v":
			cmdErr = a.ImageToVideo(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
	}
}
