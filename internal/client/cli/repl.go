package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// errUnknownCommand is returned by Execute for names not in the command table.
var errUnknownCommand = errors.New("unknown command")

// inputError is a problem with what the user typed. Its text is shown as is.
type inputError string

func (e inputError) Error() string { return string(e) }

func usage(u string) error { return inputError("Usage: " + u) }

// lineReader hands the scanner at most one line per Read, so prompts issued
// by a command can read the following lines from the same bufio.Reader.
type lineReader struct {
	r *bufio.Reader
}

func (l lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		c, err := l.r.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = c
		n++
		if c == '\n' {
			break
		}
	}
	return n, nil
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	Execute(ctx context.Context, name string, args []string) error
	LeavePage()
}

// message picks the text shown for a failed command.
func message(err error) string {
	var ie inputError
	switch {
	case errors.As(err, &ie):
		return string(ie)
	case errors.Is(err, errInvalidChoice):
		return "Invalid choice, please try again."
	case errors.Is(err, io.EOF):
		return "Input closed."
	default:
		return client.UserMessage(err)
	}
}

// runREPL reads commands from scanner and dispatches them to a until EOF,
// "exit"/"quit" or ctx cancellation.
//
// The prompt shows the current status (from statusFn). "help" lists only the
// commands the current role may use. A command that needs a session while
// none exists sends the user to the login prompt.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			a.LeavePage()
			return
		}
		printlnFn(fmt.Sprintf("diary %s > ", statusFn()))
		if !scanner.Scan() {
			a.LeavePage()
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a.isLoggedIn(), a.role()))

		case "exit", "quit":
			a.LeavePage()
			printlnFn("Bye!")
			return

		default:
			err := a.Execute(ctx, cmd, args)
			switch {
			case err == nil:
			case errors.Is(err, errUnknownCommand):
				printlnFn("Unknown command:", cmd)
			case services.IsLoginRedirect(err) && cmd != "login":
				printlnFn(message(err))
				if err := a.Execute(ctx, "login", nil); err != nil {
					printlnFn(message(err))
				}
			default:
				printlnFn(message(err))
			}
		}
	}
}
