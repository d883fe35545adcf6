// Package createadmin implements the `supportsync create-admin` command.
package createadmin

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/supportsync-io/supportsync/internal/application/user/usecases"
	"github.com/supportsync-io/supportsync/internal/infrastructure/auth"
	"github.com/supportsync-io/supportsync/internal/infrastructure/config"
	"github.com/supportsync-io/supportsync/internal/infrastructure/database"
	"github.com/supportsync-io/supportsync/internal/infrastructure/repository"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

var (
	env      string
	username string
	email    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long:  `Create an administrator account. The password is read from the terminal, or from the SUPPORTSYNC_ADMIN_PASSWORD environment variable when set.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Admin username")
	cmd.Flags().StringVarP(&email, "email", "m", "", "Admin email address")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	if username == "" {
		if username, err = prompt(reader, "Username: "); err != nil {
			return err
		}
	}
	if email == "" {
		if email, err = prompt(reader, "Email: "); err != nil {
			return err
		}
	}

	password, err := readPassword(reader)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		_ = database.Close()
	}()

	userRepo := repository.NewUserRepository(database.Get())
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	createUser := usecases.NewCreateUserUseCase(userRepo, hasher, logger.NewLogger())

	created, err := createUser.Execute(cmd.Context(), usecases.CreateUserCommand{
		Username: username,
		Email:    email,
		Password: password,
		Role:     "admin",
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("Admin account created: %s <%s> (id %d)\n", created.Username, created.Email, created.ID)
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func readPassword(reader *bufio.Reader) (string, error) {
	if fromEnv := os.Getenv("SUPPORTSYNC_ADMIN_PASSWORD"); fromEnv != "" {
		return fromEnv, nil
	}

	fmt.Print("Password: ")
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	// Piped input, e.g. in scripts.
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
