package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"fileauth/internal/domain/entity"
	"fileauth/internal/domain/repository"
	"fileauth/internal/infra/persistence/yamlstore"
	"fileauth/internal/usecase"
	"fileauth/internal/usecase/impl"

	"github.com/pkg/errors"
)

// cliActor is recorded as the actor of changes made from the command line.
const cliActor = "cli"

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	return fs
}

// fileFlag registers -f/--file.
func fileFlag(fs *flag.FlagSet, usage string) *string {
	path := new(string)
	fs.StringVar(path, "f", "", usage)
	fs.StringVar(path, "file", "", usage)

	return path
}

func stringFlag(fs *flag.FlagSet, short, long, usage string) *string {
	value := new(string)
	if short != "" {
		fs.StringVar(value, short, "", usage)
	}
	fs.StringVar(value, long, "", usage)

	return value
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return set
}

// openUsers builds the user use case over the given file. The store is
// loaded unless the caller is about to initialise it.
func (a *app) openUsers(ctx context.Context, path string, load bool) (usecase.UserUsecase, repository.CredentialStore, error) {
	if path == "" {
		return nil, nil, errors.New("--file is required")
	}

	store := yamlstore.New(path, a.hasher, a.logger)
	if load {
		if err := store.Load(ctx); err != nil {
			return nil, nil, err
		}
	}

	users := impl.NewUserService(impl.UserServiceParams{
		Store:  store,
		Hasher: a.hasher,
		Logger: a.logger,
	})

	return users, store, nil
}

func (a *app) runInit(ctx context.Context, args []string) error {
	fs := a.newFlagSet("init")
	path := fileFlag(fs, "Path for new users YAML file")
	password := stringFlag(fs, "p", "password", "Admin password (will prompt if not provided)")
	email := stringFlag(fs, "e", "email", "Admin email")
	force := fs.Bool("force", false, "Overwrite existing file")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse init flags")
	}

	if *path == "" {
		return errors.New("--file is required")
	}
	if _, err := os.Stat(*path); err == nil && !*force {
		return errors.Errorf("File already exists: %s\nUse --force to overwrite", *path)
	}

	secret := *password
	if secret == "" {
		var err error
		if secret, err = a.promptNewPassword("Admin password: "); err != nil {
			return err
		}
	}

	users, store, err := a.openUsers(ctx, *path, false)
	if err != nil {
		return err
	}
	admin, err := users.InitStore(ctx, usecase.InitStoreInput{Password: secret, Email: *email, Force: *force})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Created users file: %s\n", store.Path())
	fmt.Fprintf(a.stdout, "Admin user created with username '%s'\n", admin.Username)

	return nil
}

func (a *app) runAddUser(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add-user")
	path := fileFlag(fs, "Path to users YAML file")
	username := stringFlag(fs, "u", "username", "Username")
	password := stringFlag(fs, "p", "password", "Password (will prompt if not provided)")
	role := stringFlag(fs, "r", "role", "User role (admin, editor, viewer)")
	email := stringFlag(fs, "e", "email", "Email address")
	firstName := stringFlag(fs, "", "firstname", "First name")
	lastName := stringFlag(fs, "", "lastname", "Last name")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse add-user flags")
	}

	if *username == "" {
		return errors.New("--username is required")
	}
	if !entity.Role(*role).IsValid() {
		return errors.Errorf("--role must be one of admin, editor, viewer (got %q)", *role)
	}

	users, _, err := a.openUsers(ctx, *path, true)
	if err != nil {
		return err
	}

	secret := *password
	if secret == "" {
		if secret, err = a.promptNewPassword("Password: "); err != nil {
			return err
		}
	}

	user, err := users.CreateUser(ctx, cliActor, usecase.CreateUserInput{
		Username:  *username,
		Password:  secret,
		Role:      entity.Role(*role),
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "User '%s' added with role '%s'\n", user.Username, user.Role)

	return nil
}

func (a *app) runUpdateUser(ctx context.Context, args []string) error {
	fs := a.newFlagSet("update-user")
	path := fileFlag(fs, "Path to users YAML file")
	username := stringFlag(fs, "u", "username", "Username to update")
	changePassword := new(bool)
	fs.BoolVar(changePassword, "p", false, "Change password (prompts)")
	fs.BoolVar(changePassword, "password", false, "Change password (prompts)")
	role := stringFlag(fs, "r", "role", "New role (admin, editor, viewer)")
	email := stringFlag(fs, "e", "email", "New email")
	firstName := stringFlag(fs, "", "firstname", "New first name")
	lastName := stringFlag(fs, "", "lastname", "New last name")
	active := stringFlag(fs, "", "active", "Set active status (true/false)")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse update-user flags")
	}

	if *username == "" {
		return errors.New("--username is required")
	}

	set := setFlags(fs)
	input := usecase.UpdateUserInput{}
	if set["r"] || set["role"] {
		r := entity.Role(*role)
		if !r.IsValid() {
			return errors.Errorf("--role must be one of admin, editor, viewer (got %q)", *role)
		}
		input.Role = &r
	}
	if set["e"] || set["email"] {
		input.Email = email
	}
	if set["firstname"] {
		input.FirstName = firstName
	}
	if set["lastname"] {
		input.LastName = lastName
	}
	if set["active"] {
		isActive := strings.EqualFold(strings.TrimSpace(*active), "true")
		input.Active = &isActive
	}

	users, _, err := a.openUsers(ctx, *path, true)
	if err != nil {
		return err
	}

	if *changePassword {
		secret, err := a.promptNewPassword("New password: ")
		if err != nil {
			return err
		}
		input.Password = &secret
	}

	user, err := users.UpdateUser(ctx, cliActor, *username, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "User '%s' updated\n", user.Username)

	return nil
}

func (a *app) runDeleteUser(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete-user")
	path := fileFlag(fs, "Path to users YAML file")
	username := stringFlag(fs, "u", "username", "Username to delete")
	yes := new(bool)
	fs.BoolVar(yes, "y", false, "Skip confirmation")
	fs.BoolVar(yes, "yes", false, "Skip confirmation")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse delete-user flags")
	}

	if *username == "" {
		return errors.New("--username is required")
	}

	users, _, err := a.openUsers(ctx, *path, true)
	if err != nil {
		return err
	}

	if !*yes {
		ok, err := a.confirm(fmt.Sprintf("Delete user '%s'?", *username))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.stdout, "Aborted")

			return nil
		}
	}

	if err := users.DeleteUser(ctx, cliActor, *username); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "User '%s' deleted\n", *username)

	return nil
}

func (a *app) runListUsers(ctx context.Context, args []string) error {
	fs := a.newFlagSet("list-users")
	path := fileFlag(fs, "Path to users YAML file")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse list-users flags")
	}

	users, _, err := a.openUsers(ctx, *path, true)
	if err != nil {
		return err
	}

	list, err := users.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.stdout, "No users found")

		return nil
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 1, ' ', 0)
	fmt.Fprintln(w, "Username\tRole\tEmail\tActive")
	fmt.Fprintln(w, "--------\t----\t-----\t------")
	for _, user := range list {
		active := "No"
		if user.Active {
			active = "Yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", user.Username, user.Role, user.Email, active)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "write table")
	}

	fmt.Fprintf(a.stdout, "\nTotal: %d user(s)\n", len(list))

	return nil
}

func (a *app) runHashPassword(args []string) error {
	fs := a.newFlagSet("hash-password")
	password := stringFlag(fs, "p", "password", "Password to hash (will prompt if not provided)")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse hash-password flags")
	}

	secret := *password
	if secret == "" {
		var err error
		if secret, err = a.password("Password: "); err != nil {
			return err
		}
	}
	if secret == "" {
		return errEmptyPassword
	}

	users := impl.NewUserService(impl.UserServiceParams{Hasher: a.hasher, Logger: a.logger})
	hash, err := users.HashPassword(secret)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, hash)

	return nil
}
