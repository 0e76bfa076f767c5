package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var status, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees in file order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter employee.EmployeeFilter
			if status != "" {
				filter.Status = &status
			}
			if search != "" {
				filter.Search = &search
			}

			result, err := appFrom(cmd.Context()).EmployeeService.ListEmployees(cmd.Context(), filter)
			if err != nil {
				return classify(err)
			}
			return writeRoster(cmd.OutOrStdout(), result.Employees)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only employees with this Employee Status")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive match on EC Number, Employee Code or name")
	return cmd
}

func writeRoster(out io.Writer, employees []employee.EmployeeResponse) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join([]string{"EC NUMBER", "CODE", "NAME", "STATUS", "BASIC", "GRAND TOTAL"}, "\t"))
	for _, e := range employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ECNumber, e.EmployeeCode, e.FullName, e.Status,
			e.BasicSalary.StringFixed(2), e.GrandTotal.StringFixed(2))
	}
	fmt.Fprintf(w, "\n%d employees\n", len(employees))
	return w.Flush()
}
