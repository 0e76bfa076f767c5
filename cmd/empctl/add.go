package main

import (
	"fmt"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		req   employee.CreateEmployeeRequest
		basic string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee with the next EC Number and derived salary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(basic)
			if err != nil {
				return withCode(exitUsage, fmt.Errorf("invalid --basic-salary %q", basic))
			}
			req.BasicSalary = amount

			created, err := appFrom(cmd.Context()).EmployeeService.CreateEmployee(cmd.Context(), req)
			if err != nil {
				return classify(err)
			}
			printEmployee(cmd, "added", created)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.EmployeeCode, "employee-code", "", "Employee Code")
	f.StringVar(&req.Surname, "surname", "", "Surname")
	f.StringVar(&req.FirstName, "first-name", "", "First name")
	f.StringVar(&req.MiddleName, "middle-name", "", "Middle name")
	f.StringVar(&req.DOB, "dob", "", "Date of birth (YYYY-MM-DD)")
	f.StringVar(&req.Email, "email", "", "Email ID")
	f.StringVar(&req.JoiningDate, "joining-date", "", "Date of joining (YYYY-MM-DD)")
	f.StringVar(&req.BankName, "bank-name", "", "Bank name")
	f.StringVar(&req.AccountNumber, "account-number", "", "Bank account number")
	f.StringVar(&req.IFSCCode, "ifsc", "", "IFSC code")
	f.StringVar(&req.PFNumber, "pf-number", "", "PF number")
	f.StringVar(&basic, "basic-salary", "0", "Basic Salary; every other component is derived from it")
	f.StringVar(&req.Status, "status", "", "Employee Status (default Active)")
	return cmd
}

func printEmployee(cmd *cobra.Command, verb string, e employee.EmployeeResponse) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (grand total %s)\n", verb, e.ECNumber, e.FullName, e.GrandTotal.StringFixed(2))
}
