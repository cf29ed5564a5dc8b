package credentials

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"lemmyopml/internal/domain"
)

// Static returns a fixed password, as supplied with --password.
type Static string

// Password implements domain.PasswordSource.
func (s Static) Password() (string, error) { return string(s), nil }

// File reads the password from a file holding it and nothing else.
type File string

// Password implements domain.PasswordSource.
func (f File) Password() (string, error) {
	b, err := os.ReadFile(string(f))
	if err != nil {
		return "", fmt.Errorf("read password file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Prompt asks on the terminal with echo disabled.
type Prompt struct {
	Out io.Writer // prompt destination; defaults to os.Stderr
}

// Password implements domain.PasswordSource.
func (p Prompt) Password() (string, error) {
	out := p.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprint(out, "Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Resolve picks the source for the given flag values. An explicit
// --password wins over --pass-file, which wins over the prompt.
func Resolve(password, passFile string) domain.PasswordSource {
	switch {
	case password != "":
		return Static(password)
	case passFile != "":
		return File(passFile)
	default:
		return Prompt{}
	}
}

var (
	_ domain.PasswordSource = Static("")
	_ domain.PasswordSource = File("")
	_ domain.PasswordSource = Prompt{}
)
