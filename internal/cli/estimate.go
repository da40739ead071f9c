package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Spok95/project-assistant/internal/domain/estimate"
	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/Spok95/project-assistant/internal/infra/metrics"
	"github.com/Spok95/project-assistant/internal/infra/report"
	"github.com/spf13/cobra"
)

type estimateOptions struct {
	area   string
	mode   string
	colors []string
	uid    string
	xlsx   string
}

func newEstimateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate plaster or paint needs and the cost of what is missing",
	}
	cmd.AddCommand(newPlasterCmd(opts), newPaintCmd(opts))
	return cmd
}

func newPlasterCmd(opts *rootOptions) *cobra.Command {
	eo := &estimateOptions{}
	cmd := &cobra.Command{
		Use:   "plaster",
		Short: "Sand, cement and lime for a wall area",
		Example: `  assistant estimate plaster --area 10 --mode coarse
  assistant estimate plaster --area 25 --mode fine --xlsx plaster.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, opts, eo, func(ctx context.Context, svc *estimate.Service) (estimate.Estimate, error) {
				return svc.PlasterEstimate(ctx, eo.uid, eo.area, eo.mode)
			})
		},
	}
	cmd.Flags().StringVar(&eo.area, "area", "", "Wall area in m²")
	cmd.Flags().StringVar(&eo.mode, "mode", string(estimate.ModeCoarse), "Plaster mode: coarse or fine")
	addCommonFlags(cmd, eo)
	_ = cmd.MarkFlagRequired("area")
	return cmd
}

func newPaintCmd(opts *rootOptions) *cobra.Command {
	eo := &estimateOptions{}
	cmd := &cobra.Command{
		Use:     "paint",
		Short:   "Liters of paint per color for a wall area",
		Example: `  assistant estimate paint --area 45 --colors white,red`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, opts, eo, func(ctx context.Context, svc *estimate.Service) (estimate.Estimate, error) {
				if len(eo.colors) == 0 {
					return svc.PaintEstimate(ctx, eo.uid, eo.area)
				}
				inv := materials.Inventory{}
				if eo.uid != "" {
					var err error
					if inv, err = svc.OnHand(ctx, eo.uid); err != nil {
						return estimate.Estimate{}, err
					}
				}
				return svc.PaintFor(inv, eo.area, eo.colors), nil
			})
		},
	}
	cmd.Flags().StringVar(&eo.area, "area", "", "Wall area in m²")
	cmd.Flags().StringSliceVar(&eo.colors, "colors", nil, "Colors to estimate (default: colors in the --uid inventory, or the default palette without --uid)")
	addCommonFlags(cmd, eo)
	_ = cmd.MarkFlagRequired("area")
	return cmd
}

func addCommonFlags(cmd *cobra.Command, eo *estimateOptions) {
	cmd.Flags().StringVar(&eo.uid, "uid", "", "Use this user's inventory from the configured store")
	cmd.Flags().StringVar(&eo.xlsx, "xlsx", "", "Also write the estimate to this .xlsx file")
}

func runEstimate(cmd *cobra.Command, opts *rootOptions, eo *estimateOptions,
	run func(context.Context, *estimate.Service) (estimate.Estimate, error)) error {

	ctx := cmd.Context()
	var svc *estimate.Service
	if eo.uid != "" {
		a, err := newApp(ctx, opts.cfg, opts.log, nil)
		if err != nil {
			return err
		}
		defer a.Close()
		svc = a.estimates
	} else {
		prices := materials.DefaultPrices().WithOverrides(opts.cfg.Prices)
		svc = estimate.NewService(nil, prices, metrics.Nop(), opts.log)
	}

	e, err := run(ctx, svc)
	if err != nil {
		return err
	}
	if err := printEstimate(cmd.OutOrStdout(), e); err != nil {
		return err
	}

	if eo.xlsx == "" {
		return nil
	}
	data, err := report.EstimateXLSX(estimateTitle(e), e.Result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(eo.xlsx, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", eo.xlsx, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", eo.xlsx)
	return nil
}

func estimateTitle(e estimate.Estimate) string {
	if e.Kind == estimate.KindPlaster {
		return fmt.Sprintf("Plaster (%s), %g m2", e.Mode, e.Area)
	}
	return fmt.Sprintf("Paint, %g m2", e.Area)
}

func printEstimate(w io.Writer, e estimate.Estimate) error {
	_, _ = fmt.Fprintln(w, estimateTitle(e))
	if len(e.Lines) == 0 {
		_, _ = fmt.Fprintln(w, "nothing to estimate: check the area and mode")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join([]string{"MATERIAL", "REQUIRED", "ON HAND", "MISSING", "COST"}, "\t"))
	for _, l := range e.Lines {
		_, _ = fmt.Fprintf(tw, "%s\t%d %s\t%d\t%d\t%s\n",
			l.Name, l.Required, l.Unit, l.OnHand, l.Missing, l.Cost.StringFixed(2))
	}
	_, _ = fmt.Fprintf(tw, "TOTAL\t\t\t\t%s\n", e.Total.StringFixed(2))
	return tw.Flush()
}
