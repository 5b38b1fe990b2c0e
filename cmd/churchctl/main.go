// Command churchctl runs one-off administrative tasks against the database:
//
//	churchctl db migrate
//	churchctl church create --name "Igreja Central" --slug central
//	churchctl admin create --church <uuid> --name Ana --email ana@example.com --phone 11999990000 --password ...
//
// It reads the same environment (and .env file) as the API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/baharkarakas/church-backend/internal/config"
	"github.com/baharkarakas/church-backend/internal/db"
)

var rootCmd = &cobra.Command{
	Use:           "churchctl",
	Short:         "Administrative tasks for the church backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// connect opens a pool using DATABASE_URL; callers close it.
func connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg := config.Load()
	return db.NewPool(ctx, cfg.DatabaseURL)
}
