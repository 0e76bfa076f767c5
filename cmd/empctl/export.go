package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/service/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the employee master as CSV, XLSX or PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(output), ".")
			}
			if format == "" {
				format = export.FormatCSV
			}
			if export.ContentType(format) == "" {
				return withCode(exitUsage, employee.ErrUnsupportedExport)
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return withCode(exitUsage, err)
				}
				defer f.Close()
				out = f
			}

			if err := appFrom(cmd.Context()).ExportService.Export(cmd.Context(), format, out); err != nil {
				return classify(err)
			}
			if output != "" && output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "csv, xlsx or pdf (default: from --output extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, - for stdout")
	return cmd
}
