package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/church-backend/internal/repository/postgres"
	"github.com/baharkarakas/church-backend/internal/services"
)

var churchCmd = &cobra.Command{
	Use:   "church",
	Short: "Manage tenants",
}

var churchCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a church",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		slug, _ := cmd.Flags().GetString("slug")

		pool, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		repos := postgres.NewRepositories(pool)
		c, err := services.NewChurchService(repos.Churches, repos.Profiles).Create(cmd.Context(), name, slug)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created church %s (%s)\n", c.ID, c.Slug)
		return nil
	},
}

func init() {
	churchCreateCmd.Flags().String("name", "", "display name")
	churchCreateCmd.Flags().String("slug", "", "url-safe identifier")
	_ = churchCreateCmd.MarkFlagRequired("name")
	_ = churchCreateCmd.MarkFlagRequired("slug")
	churchCmd.AddCommand(churchCreateCmd)
	rootCmd.AddCommand(churchCmd)
}
