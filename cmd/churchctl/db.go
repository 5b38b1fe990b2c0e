package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/church-backend/internal/db"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database schema",
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := db.RunMigrations(cmd.Context(), pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
		return nil
	},
}

var dbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the migrations bundled in this binary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := db.Bundled()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd, dbListCmd)
	rootCmd.AddCommand(dbCmd)
}
