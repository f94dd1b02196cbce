package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

var (
	errPasswordMismatch = errors.New("Passwords do not match")
	errEmptyPassword    = errors.New("Password cannot be empty")
)

// readPassword reads without echo from a terminal, or a plain line when
// stdin is piped.
func (a *app) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(a.stderr)
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}

		return string(secret), nil
	}

	return a.readLine()
}

func (a *app) readLine() (string, error) {
	line, err := a.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "read input")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPassword asks twice and requires both entries to match.
func (a *app) promptNewPassword(prompt string) (string, error) {
	password, err := a.password(prompt)
	if err != nil {
		return "", err
	}
	confirm, err := a.password("Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", errPasswordMismatch
	}
	if password == "" {
		return "", errEmptyPassword
	}

	return password, nil
}

// confirm asks a yes/no question; anything but y or yes is a no.
func (a *app) confirm(question string) (bool, error) {
	fmt.Fprintf(a.stdout, "%s [y/N]: ", question)

	answer, err := a.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
