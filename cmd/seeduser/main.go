// Command seeduser da de alta un usuario que puede iniciar sesión en la API.
//
//	seeduser --email ana@example.com --password segredo123 --nome "Ana"
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

type options struct {
	Email    string
	Password string
	Name     string
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "seeduser",
		Short:         "Crea un usuario en la tabla usuarios",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Email, "email", "", "email de login")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password (mínimo 6 caracteres)")
	cmd.Flags().StringVar(&opts.Name, "nome", "", "nombre visible (por defecto el email)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	email := strings.ToLower(strings.TrimSpace(opts.Email))
	hash, err := auth.HashPassword(opts.Password)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = email
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, config.LoadDB(), logger.Nop())
	if err != nil {
		return err
	}
	defer pool.Close()

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := postgres.NewUserRepository(pool).Create(ctx, user); err != nil {
		return fmt.Errorf("crear usuario: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "usuario %s creado (id %s)\n", user.Email, user.ID)
	return nil
}
