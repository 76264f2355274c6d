package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qr-menu/internal/catalog/repository/postgre"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the catalog database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().String("dsn", "", "PostgreSQL connection string (defaults to $DATABASE_URL)")

	up := &cobra.Command{
		Use:   "up",
		Short: "Create the catalog schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, postgre.MigrateUp)
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Drop the catalog schema and all its data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return errors.New("refusing to drop the schema without --yes")
			}
			return withDB(cmd, postgre.MigrateDown)
		},
	}
	down.Flags().Bool("yes", false, "Confirm dropping every catalog table")

	cmd.AddCommand(up, down)
	return cmd
}

func dsnFromFlags(cmd *cobra.Command) (string, error) {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		v := viper.New()
		v.AutomaticEnv()
		dsn = v.GetString("DATABASE_URL")
	}
	if dsn == "" {
		return "", errors.New("--dsn or DATABASE_URL is required")
	}
	return dsn, nil
}

func withDB(cmd *cobra.Command, fn func(context.Context, *sql.DB) error) error {
	dsn, err := dsnFromFlags(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	l := newLogger(cmd)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			l.Errorf(ctx, "Error closing database connection: %v", closeErr)
		}
	}()

	if err := fn(ctx, db); err != nil {
		return fmt.Errorf("migrate %s: %w", cmd.Name(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", cmd.Name())
	return nil
}
