package main

import (
	"fmt"
	"os"

	"github.com/piresc/ojekdriver/internal/pkg/config"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/spf13/cobra"
)

const (
	appName           = "driver-service"
	defaultConfigPath = "config/driver.env"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "driver",
	Short: "Driver trip and balance service",
	Long: `driver runs the driver side of the ride-hailing platform: onboarding and
verification, availability, trip offers, the platform-fee balance and deposits.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "env file to load (default "+defaultConfigPath+" when APP_ENV=local)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// loadConfig reads --config unconditionally, or the default env file in local mode
func loadConfig() *models.Config {
	if cfgFile != "" {
		return config.InitConfigFromFile(cfgFile)
	}
	return config.InitConfig(defaultConfigPath)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
