package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BruksfildServices01/employee-portal/pkg/portalclient"
)

var rootCmd = &cobra.Command{
	Use:           "portalctl",
	Short:         "Command line client for the employee portal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("url", "http://localhost:5000", "portal API base URL")
	rootCmd.PersistentFlags().String("session", "", "session file (defaults to the user config dir)")
	_ = viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	_ = viper.BindPFlag("session", rootCmd.PersistentFlags().Lookup("session"))

	viper.SetEnvPrefix("PORTALCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		loginCmd, logoutCmd, whoamiCmd,
		employeesCmd, statsCmd, auditCmd, supervisorsCmd,
	)
}

// newClient restores the stored session, if any.
func newClient() (*portalclient.Client, error) {
	path := viper.GetString("session")
	if path == "" {
		var err error
		if path, err = portalclient.DefaultSessionPath(); err != nil {
			return nil, err
		}
	}
	return portalclient.New(viper.GetString("url"), portalclient.NewFileStore(path))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, portalclient.ErrSessionExpired), errors.Is(err, portalclient.ErrNotLoggedIn):
			fmt.Fprintf(os.Stderr, "%v; run `portalctl login`\n", err)
		default:
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
