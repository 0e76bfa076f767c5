package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the dashboard counts and Grand Total sum",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appFrom(cmd.Context()).DashboardService.GetSummary(cmd.Context())
			if err != nil {
				return classify(err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total employees\t%d\n", s.TotalEmployee)
			fmt.Fprintf(w, "Active\t%d\n", s.ActiveEmployee)
			fmt.Fprintf(w, "Probation\t%d\n", s.ProbationEmployee)
			fmt.Fprintf(w, "Resigned\t%d\n", s.ResignedEmployee)
			fmt.Fprintf(w, "Retired\t%d\n", s.RetiredEmployee)
			fmt.Fprintf(w, "Inactive\t%d\n", s.InactiveEmployee)
			fmt.Fprintf(w, "Total payment\t%s\n", s.TotalGrandTotal.StringFixed(2))
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	return cmd
}
