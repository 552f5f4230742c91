package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/export"
)

func newExportCommand(configPath *string) *cobra.Command {
	var out, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			records, err := filteredRecords(a, fromStr, toStr)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			return export.WriteRecords(w, records)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&fromStr, "from", "", "inclusive start date")
	cmd.Flags().StringVar(&toStr, "to", "", "inclusive end date")
	return cmd
}
