package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// errInvalidChoice is returned by GetChoice for input that names no option.
var errInvalidChoice = errors.New("invalid choice")

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline prints a prompt to w and reads lines until an empty one.
// The collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetChoice shows options as a numbered menu and returns the one picked.
// The answer may be its number or its name, case-insensitive. An empty
// answer returns def when def is set.
func GetChoice(reader *bufio.Reader, prompt string, options []string, def string, w io.Writer) (string, error) {
	i, err := GetChoiceIndex(reader, prompt, options, slices.Index(options, def), w)
	if err != nil {
		return "", err
	}
	return options[i], nil
}

// GetChoiceIndex is GetChoice returning the 0-based position of the pick,
// for menus whose labels may repeat. def is a position, or -1 for none. A
// name shared by several options is rejected; the number must be used.
func GetChoiceIndex(reader *bufio.Reader, prompt string, options []string, def int, w io.Writer) (int, error) {
	var b strings.Builder
	b.WriteString(prompt)
	for i, o := range options {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, o)
		if i == def {
			b.WriteString(" (default)")
		}
	}

	answer, err := GetSimpleText(reader, b.String(), w)
	if err != nil {
		return -1, err
	}
	if answer == "" && def >= 0 && def < len(options) {
		return def, nil
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		return -1, fmt.Errorf("%w: %d", errInvalidChoice, n)
	}
	found := -1
	for i, o := range options {
		if !strings.EqualFold(o, answer) {
			continue
		}
		if found >= 0 {
			return -1, fmt.Errorf("%w: %q is ambiguous", errInvalidChoice, answer)
		}
		found = i
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %q", errInvalidChoice, answer)
	}
	return found, nil
}
