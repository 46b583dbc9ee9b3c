package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show directory totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		st, err := c.Stats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "total %d\nactive %d\ninactive %d\ndepartments %d\n",
			st.Total, st.Active, st.Inactive, st.Departments)
		return nil
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent audit entries (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		c, err := newClient()
		if err != nil {
			return err
		}
		logs, err := c.AuditLogs(cmd.Context(), limit)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "WHEN\tACTION\tBY\tTARGET\tDETAILS")
		for _, l := range logs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				l.CreatedAt.Local().Format("2006-01-02 15:04:05"), l.Action, l.User.Email, l.TargetResource, l.Details)
		}
		return tw.Flush()
	},
}

var supervisorsCmd = &cobra.Command{
	Use:   "supervisors",
	Short: "Manage supervisor accounts (admin)",
}

var supervisorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supervisor accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		list, err := c.ListSupervisors(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tEMAIL\tCREATED")
		for _, a := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ID, a.Email, a.CreatedAt.Local().Format("2006-01-02"))
		}
		return tw.Flush()
	},
}

var supervisorsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a supervisor account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password := viper.GetString("supervisor-password")
		if password == "" {
			return fmt.Errorf("password required: pass --password or set PORTALCTL_SUPERVISOR_PASSWORD")
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		acc, err := c.CreateSupervisor(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created supervisor %s (%s)\n", acc.Email, acc.ID)
		return nil
	},
}

var supervisorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.DeleteAccount(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted")
		return nil
	},
}

func init() {
	auditCmd.Flags().Int("limit", 100, "number of entries, at most 500")

	supervisorsCreateCmd.Flags().String("email", "", "supervisor email")
	supervisorsCreateCmd.Flags().String("password", "", "initial password (or $PORTALCTL_SUPERVISOR_PASSWORD)")
	_ = supervisorsCreateCmd.MarkFlagRequired("email")
	_ = viper.BindPFlag("supervisor-password", supervisorsCreateCmd.Flags().Lookup("password"))

	supervisorsCmd.AddCommand(supervisorsListCmd, supervisorsCreateCmd, supervisorsDeleteCmd)
}
