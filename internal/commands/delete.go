package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <document-id>",
		Short: "Delete an imported document and its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			if err := a.service.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted document %s\n", args[0])
			return nil
		},
	}
}
