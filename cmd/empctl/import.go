package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Merge CSV/XLSX/XLS files into the employee master (first EC Number wins)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req employee.ImportEmployeesRequest
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return withCode(exitUsage, err)
				}
				defer f.Close()
				req.Files = append(req.Files, employee.ImportFile{Filename: filepath.Base(path), Content: f})
			}

			result, err := appFrom(cmd.Context()).EmployeeService.ImportEmployees(cmd.Context(), req)
			if err != nil {
				return classify(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "received %d, imported %d, skipped %d duplicates, %d employees total\n",
				result.Received, result.Imported, result.Skipped, result.Total)
			for _, p := range result.Archived {
				fmt.Fprintf(cmd.OutOrStdout(), "archived %s\n", p)
			}
			return nil
		},
	}
	return cmd
}
