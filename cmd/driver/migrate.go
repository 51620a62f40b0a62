package main

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/ojekdriver/internal/pkg/database"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the payment_notifications schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := loadConfig()

		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer postgresClient.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := postgresClient.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("Schema applied", logger.String("database", configs.Database.Database))
		return nil
	},
}
