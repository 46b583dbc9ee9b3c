package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/employee-portal/internal/auth"
	"github.com/BruksfildServices01/employee-portal/internal/config"
	dbpkg "github.com/BruksfildServices01/employee-portal/internal/db"
	ucAccount "github.com/BruksfildServices01/employee-portal/internal/usecase/account"
)

var rootCmd = &cobra.Command{
	Use:   "portaladmin",
	Short: "Employee portal maintenance tasks",
	Long:  `Schema migration and bootstrap of the first admin account.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		stores, err := dbpkg.OpenStores(cfg, true)
		if err != nil {
			return err
		}
		defer stores.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password = os.Getenv("PORTAL_ADMIN_PASSWORD")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		stores, err := dbpkg.OpenStores(cfg, true)
		if err != nil {
			return err
		}
		defer stores.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		acc, err := ucAccount.NewSeedAdmin(stores.Accounts, auth.NewBcryptHasher(cfg.BcryptCost)).
			Execute(ctx, email, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "admin %s created (%s)\n", acc.Email, acc.ID)
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func init() {
	seedAdminCmd.Flags().String("email", "", "admin email")
	seedAdminCmd.Flags().String("password", "", "admin password (defaults to $PORTAL_ADMIN_PASSWORD)")
	_ = seedAdminCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(migrateCmd, seedAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
