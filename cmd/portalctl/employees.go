package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/employee-portal/pkg/portalclient"
)

var employeesCmd = &cobra.Command{
	Use:     "employees",
	Aliases: []string{"emp"},
	Short:   "Browse and edit employee records",
}

var employeeFields = []struct {
	flag  string
	usage string
	set   func(in *portalclient.EmployeeInput, v *string)
}{
	{"first-name", "first name", func(in *portalclient.EmployeeInput, v *string) { in.FirstName = v }},
	{"last-name", "last name", func(in *portalclient.EmployeeInput, v *string) { in.LastName = v }},
	{"email", "work email", func(in *portalclient.EmployeeInput, v *string) { in.Email = v }},
	{"employee-id", "employee identifier (create only)", func(in *portalclient.EmployeeInput, v *string) { in.EmployeeID = v }},
	{"department", "department", func(in *portalclient.EmployeeInput, v *string) { in.Department = v }},
	{"role", "job title", func(in *portalclient.EmployeeInput, v *string) { in.Role = v }},
	{"status", "active or inactive", func(in *portalclient.EmployeeInput, v *string) { in.Status = v }},
	{"joined", "date of joining, YYYY-MM-DD", func(in *portalclient.EmployeeInput, v *string) { in.DateOfJoining = v }},
	{"notes", "free text notes", func(in *portalclient.EmployeeInput, v *string) { in.Notes = v }},
	{"manager", "manager account id", func(in *portalclient.EmployeeInput, v *string) { in.ManagerID = v }},
}

func addEmployeeFlags(cmd *cobra.Command) {
	for _, f := range employeeFields {
		cmd.Flags().String(f.flag, "", f.usage)
	}
}

// inputFromFlags only carries the flags that were given, so an update never
// blanks a field by accident.
func inputFromFlags(cmd *cobra.Command) portalclient.EmployeeInput {
	var in portalclient.EmployeeInput
	for _, f := range employeeFields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, _ := cmd.Flags().GetString(f.flag)
		f.set(&in, &v)
	}
	return in
}

func listParams(cmd *cobra.Command) portalclient.ListParams {
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	search, _ := cmd.Flags().GetString("search")
	department, _ := cmd.Flags().GetString("department")
	status, _ := cmd.Flags().GetString("status")
	return portalclient.ListParams{
		Page:       page,
		Limit:      limit,
		Search:     search,
		Department: department,
		Status:     status,
	}
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "match name, email, employee id or department")
	cmd.Flags().String("department", "", "exact department")
	cmd.Flags().String("status", "", "active or inactive")
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		res, err := c.ListEmployees(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printEmployees(out, res.Employees)
		fmt.Fprintf(out, "\npage %d of %d, %d employees\n", res.CurrentPage, res.TotalPages, res.TotalEmployees)
		return nil
	},
}

var employeesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every visible employee as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		all, err := c.AllEmployees(cmd.Context(), listParams(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return writeEmployeesCSV(out, all)
	},
}

var employeesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		e, err := c.GetEmployee(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printEmployees(cmd.OutOrStdout(), []portalclient.Employee{*e})
		return nil
	},
}

var employeesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		e, err := c.CreateEmployee(cmd.Context(), inputFromFlags(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", e.EmployeeID, e.ID)
		return nil
	},
}

var employeesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the given fields of an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		e, err := c.UpdateEmployee(cmd.Context(), args[0], inputFromFlags(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", e.EmployeeID)
		return nil
	},
}

var employeesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.DeleteEmployee(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted")
		return nil
	},
}

var employeesPhotoCmd = &cobra.Command{
	Use:   "photo <id> <file>",
	Short: "Upload a profile photo",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		c, err := newClient()
		if err != nil {
			return err
		}
		e, err := c.UploadPhoto(cmd.Context(), args[0], filepath.Base(args[1]), f)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), e.ProfilePhotoURL)
		return nil
	},
}

func printEmployees(w io.Writer, list []portalclient.Employee) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMPLOYEE ID\tNAME\tEMAIL\tDEPARTMENT\tROLE\tSTATUS")
	for _, e := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\t%s\t%s\t%s\n",
			e.ID, e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Department, e.Role, e.Status)
	}
	_ = tw.Flush()
}

var csvHeader = []string{
	"id", "employeeId", "firstName", "lastName", "email", "department",
	"role", "status", "dateOfJoining", "managerId", "notes",
}

func writeEmployeesCSV(w io.Writer, list []portalclient.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range list {
		manager := ""
		if e.ManagerID != nil {
			manager = *e.ManagerID
		}
		joined := ""
		if !e.DateOfJoining.IsZero() {
			joined = e.DateOfJoining.Format("2006-01-02")
		}
		row := []string{
			e.ID, e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Department,
			e.Role, e.Status, joined, manager, e.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func init() {
	for _, cmd := range []*cobra.Command{employeesListCmd, employeesExportCmd} {
		addFilterFlags(cmd)
	}
	employeesListCmd.Flags().Int("page", 1, "page number")
	employeesListCmd.Flags().Int("limit", 10, "page size")
	employeesExportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	addEmployeeFlags(employeesCreateCmd)
	addEmployeeFlags(employeesUpdateCmd)

	employeesCmd.AddCommand(
		employeesListCmd, employeesExportCmd, employeesGetCmd,
		employeesCreateCmd, employeesUpdateCmd, employeesDeleteCmd, employeesPhotoCmd,
	)
}
