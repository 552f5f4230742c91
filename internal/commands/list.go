package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			list, err := a.service.List()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No documents imported yet")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFILENAME\tIMPORTED\tRECORDS")
			for _, d := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
					d.ID, d.Filename, d.ImportedAt.Format("2006-01-02 15:04"), len(d.Records))
			}
			return tw.Flush()
		},
	}
}
