package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EC_NUMBER",
		Short: "Remove every employee carrying the EC Number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appFrom(cmd.Context()).EmployeeService.DeleteEmployee(cmd.Context(), args[0]); err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
