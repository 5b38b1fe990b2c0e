package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/church-backend/internal/repository/postgres"
	"github.com/baharkarakas/church-backend/internal/services"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage church administrators",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an administrator who can log in to the API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var in services.AdminInput
		in.ChurchID, _ = cmd.Flags().GetString("church")
		in.Name, _ = cmd.Flags().GetString("name")
		in.Email, _ = cmd.Flags().GetString("email")
		in.Phone, _ = cmd.Flags().GetString("phone")
		in.Password, _ = cmd.Flags().GetString("password")

		pool, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		repos := postgres.NewRepositories(pool)
		p, err := services.NewChurchService(repos.Churches, repos.Profiles).CreateAdmin(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created admin %s for church %s\n", p.ID, p.ChurchID)
		return nil
	},
}

func init() {
	f := adminCreateCmd.Flags()
	f.String("church", "", "church id")
	f.String("name", "", "full name")
	f.String("email", "", "login email")
	f.String("phone", "", "phone number")
	f.String("password", "", "login password")
	for _, n := range []string{"church", "name", "email", "phone", "password"} {
		_ = adminCreateCmd.MarkFlagRequired(n)
	}
	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}
