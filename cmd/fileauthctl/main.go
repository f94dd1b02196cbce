// Command fileauthctl manages the users file read by the fileauth server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fileauth/config"
	"fileauth/internal/domain/service"
	"fileauth/internal/infra/auth"
	logs "fileauth/internal/infra/log"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - init:          create a users file with an admin account
// - add-user:      add a user
// - update-user:   change a user's password, role, profile or status
// - delete-user:   remove a user
// - list-users:    print the users table
// - hash-password: print a bcrypt hash for manual editing

var errUnknownCommand = errors.New("unknown subcommand")

func main() {
	logger, err := logs.NewWithWriter(os.Stderr, config.Log{Pretty: true, Level: "warn"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := &app{
		stdin:  bufio.NewReader(os.Stdin),
		stdout: os.Stdout,
		stderr: os.Stderr,
		hasher: auth.NewBcryptHasher(),
		logger: logger,
	}
	a.password = a.readPassword

	if err := a.run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errUnknownCommand) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// app holds the process I/O so commands can be exercised in tests.
type app struct {
	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
	hasher service.PasswordHasher
	logger *slog.Logger

	// password reads a secret without echo.
	password func(prompt string) (string, error)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		a.printUsage()

		return errUnknownCommand
	}

	switch args[0] {
	case "init":
		return a.runInit(ctx, args[1:])
	case "add-user":
		return a.runAddUser(ctx, args[1:])
	case "update-user":
		return a.runUpdateUser(ctx, args[1:])
	case "delete-user":
		return a.runDeleteUser(ctx, args[1:])
	case "list-users":
		return a.runListUsers(ctx, args[1:])
	case "hash-password":
		return a.runHashPassword(args[1:])
	case "-h", "--help", "help":
		a.printUsage()

		return nil
	default:
		a.printUsage()

		return errUnknownCommand
	}
}

func (a *app) printUsage() {
	fmt.Fprintln(a.stderr, "Usage: fileauthctl <command> [options]")
	fmt.Fprintln(a.stderr, "")
	fmt.Fprintln(a.stderr, "Commands:")
	fmt.Fprintln(a.stderr, "  init           Initialize a new users file with an admin user")
	fmt.Fprintln(a.stderr, "  add-user       Add a new user")
	fmt.Fprintln(a.stderr, "  update-user    Update an existing user")
	fmt.Fprintln(a.stderr, "  delete-user    Delete a user")
	fmt.Fprintln(a.stderr, "  list-users     List all users")
	fmt.Fprintln(a.stderr, "  hash-password  Generate a bcrypt password hash")
	fmt.Fprintln(a.stderr, "")
	fmt.Fprintln(a.stderr, "Use 'fileauthctl <command> -h' for more information about a command.")
}
