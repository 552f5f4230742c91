package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/importer"
)

func newImportCommand(configPath *string) *cobra.Command {
	var scan bool

	cmd := &cobra.Command{
		Use:   "import [file.csv ...]",
		Short: "Import statement CSV exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !scan && len(args) == 0 {
				return fmt.Errorf("pass one or more CSV files, or --scan to import the drop directory")
			}

			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			if scan {
				return runImportScan(cmd, a)
			}
			return runImportFiles(cmd, a, args)
		},
	}

	cmd.Flags().BoolVar(&scan, "scan", false, "import every CSV waiting in the drop directory")
	return cmd
}

func runImportFiles(cmd *cobra.Command, a *app, paths []string) error {
	for _, path := range paths {
		if err := importOne(cmd, a, path); err != nil {
			return err
		}
	}
	return nil
}

func runImportScan(cmd *cobra.Command, a *app) error {
	files, err := importer.Scan(a.cfg.Data.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No CSV files waiting in the drop directory")
		return nil
	}

	for _, f := range files {
		if err := importOne(cmd, a, f.Path); err != nil {
			return err
		}
		if err := importer.MarkProcessed(a.cfg.Data.Dir, f.Name); err != nil {
			return err
		}
	}
	return nil
}

func importOne(cmd *cobra.Command, a *app, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, stats, err := a.service.Import(filepath.Base(path), f)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: imported %d records (%d skipped) as document %s\n",
		doc.Filename, stats.Imported, stats.Skipped(), doc.ID)
	return nil
}
