package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/aggregate"
	"github.com/spendview-dev/spendview/internal/fieldparse"
	"github.com/spendview-dev/spendview/internal/model"
)

func newReportCommand(configPath *string) *cobra.Command {
	var fromStr, toStr string
	var top int

	cmd := &cobra.Command{
		Use:       "report <categories|monthly|merchants>",
		Short:     "Show spending rollups",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"categories", "monthly", "merchants"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			records, err := filteredRecords(a, fromStr, toStr)
			if err != nil {
				return err
			}

			switch args[0] {
			case "categories":
				return reportCategories(cmd, records)
			case "monthly":
				return reportMonthly(cmd, records)
			case "merchants":
				limit := top
				if limit == 0 {
					limit = a.cfg.Reports.TopMerchants
				}
				if limit == 0 {
					limit = aggregate.DefaultMerchantLimit
				}
				return reportMerchants(cmd, records, limit)
			default:
				return fmt.Errorf("unknown report %q", args[0])
			}
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "inclusive start date")
	cmd.Flags().StringVar(&toStr, "to", "", "inclusive end date")
	cmd.Flags().IntVar(&top, "top", 0, "merchant count for the merchants report")
	return cmd
}

// filteredRecords loads the full record set and applies the optional date
// range.
func filteredRecords(a *app, fromStr, toStr string) ([]model.Record, error) {
	records, err := a.service.Records()
	if err != nil {
		return nil, err
	}

	var from, to *time.Time
	if fromStr != "" {
		t, err := fieldparse.ParseDate(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
		from = &t
	}
	if toStr != "" {
		t, err := fieldparse.ParseDate(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --to: %w", err)
		}
		to = &t
	}

	return aggregate.FilterByDateRange(records, from, to), nil
}

func reportCategories(cmd *cobra.Command, records []model.Record) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTOTAL\tCOUNT")
	for _, ct := range aggregate.CategoryTotals(records) {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", ct.Category, ct.Total.StringFixed(2), ct.Count)
	}
	return tw.Flush()
}

func reportMonthly(cmd *cobra.Command, records []model.Record) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MONTH\tTOTAL")
	for _, mt := range aggregate.MonthlySpending(records) {
		fmt.Fprintf(tw, "%s\t%s\n", mt.Month, mt.Total.StringFixed(2))
	}
	return tw.Flush()
}

func reportMerchants(cmd *cobra.Command, records []model.Record, limit int) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MERCHANT\tTOTAL\tCOUNT")
	for _, mt := range aggregate.TopMerchants(records, limit) {
		name := mt.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", name, mt.Total.StringFixed(2), mt.Count)
	}
	return tw.Flush()
}
