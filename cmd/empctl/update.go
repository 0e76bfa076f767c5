package main

import (
	"fmt"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	var surname, firstName, middleName, dob, joiningDate, basic, status string

	cmd := &cobra.Command{
		Use:   "update EC_NUMBER",
		Short: "Edit names, dates, status or Basic Salary of every row carrying the EC Number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := employee.UpdateEmployeeRequest{ECNumber: args[0]}
			set := func(flag string, value *string) *string {
				if cmd.Flags().Changed(flag) {
					return value
				}
				return nil
			}
			req.Surname = set("surname", &surname)
			req.FirstName = set("first-name", &firstName)
			req.MiddleName = set("middle-name", &middleName)
			req.DOB = set("dob", &dob)
			req.JoiningDate = set("joining-date", &joiningDate)
			req.Status = set("status", &status)
			if cmd.Flags().Changed("basic-salary") {
				amount, err := decimal.NewFromString(basic)
				if err != nil {
					return withCode(exitUsage, fmt.Errorf("invalid --basic-salary %q", basic))
				}
				req.BasicSalary = &amount
			}

			updated, err := appFrom(cmd.Context()).EmployeeService.UpdateEmployee(cmd.Context(), req)
			if err != nil {
				return classify(err)
			}
			printEmployee(cmd, "updated", updated)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&surname, "surname", "", "Surname")
	f.StringVar(&firstName, "first-name", "", "First name")
	f.StringVar(&middleName, "middle-name", "", "Middle name")
	f.StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD, empty clears)")
	f.StringVar(&joiningDate, "joining-date", "", "Date of joining (YYYY-MM-DD, empty clears)")
	f.StringVar(&basic, "basic-salary", "", "Basic Salary; the other components are rederived")
	f.StringVar(&status, "status", "", "Employee Status")
	return cmd
}
