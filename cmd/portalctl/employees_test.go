package main

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/employee-portal/pkg/portalclient"
)

func TestWriteEmployeesCSV(t *testing.T) {
	manager := "acc-1"
	list := []portalclient.Employee{
		{
			ID: "e1", EmployeeID: "EMP-1", FirstName: "Jane", LastName: "Doe",
			Email: "jane@example.com", Department: "Engineering", Role: "Dev",
			Status: "active", DateOfJoining: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ManagerID: &manager, Notes: "likes, commas",
		},
		{ID: "e2", EmployeeID: "EMP-2", FirstName: "Bob", Status: "inactive"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeEmployeesCSV(&buf, list))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "2024-03-01", rows[1][8])
	assert.Equal(t, "acc-1", rows[1][9])
	assert.Equal(t, "likes, commas", rows[1][10])
	assert.Equal(t, "", rows[2][8])
	assert.Equal(t, "", rows[2][9])
}

func TestInputFromFlags_OnlyChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	addEmployeeFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--department", "Sales", "--notes", ""}))

	in := inputFromFlags(cmd)

	require.NotNil(t, in.Department)
	assert.Equal(t, "Sales", *in.Department)
	require.NotNil(t, in.Notes)
	assert.Equal(t, "", *in.Notes)
	assert.Nil(t, in.FirstName)
	assert.Nil(t, in.EmployeeID)
}
