package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	var (
		tripType      string
		distanceKm    float64
		durationHours float64
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a trip with one or every trip strategy",
		Long: `Price a trip. With --type only that strategy is used; otherwise every
discovered strategy prices the trip concurrently.

Examples:
  fleetctl quote --distance 100 --duration 2
  fleetctl quote --type international --distance 850 --duration 12 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.tripService(opts.logger(cmd))
			if err != nil {
				return err
			}

			var quotes []ports.Quote
			if tripType != "" {
				cost, err := svc.Calculate(cmd.Context(), trip.Request{
					Type:          tripType,
					DistanceKm:    distanceKm,
					DurationHours: durationHours,
				})
				if err != nil {
					return err
				}
				quotes = []ports.Quote{{Type: tripType, Cost: *cost}}
			} else {
				quotes, err = svc.Quote(cmd.Context(), distanceKm, durationHours)
				if err != nil {
					return err
				}
			}

			return writeQuotes(cmd, opts, quotes)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&tripType, "type", "t", "", "trip type to price (default: all)")
	flags.Float64Var(&distanceKm, "distance", 0, "trip distance in kilometers")
	flags.Float64Var(&durationHours, "duration", 0, "trip duration in hours")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

type quoteOutput struct {
	Type      string             `json:"type"`
	TotalCost float64            `json:"total_cost"`
	Details   map[string]float64 `json:"details"`
}

func writeQuotes(cmd *cobra.Command, opts *rootOptions, quotes []ports.Quote) error {
	out := cmd.OutOrStdout()

	if opts.jsonOutput {
		items := make([]quoteOutput, len(quotes))
		for i, q := range quotes {
			items[i] = quoteOutput{Type: q.Type, TotalCost: q.Cost.Total, Details: q.Cost.Details}
		}
		return writeJSON(out, items)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tTOTAL\tDETAILS")
	for _, q := range quotes {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\n", q.Type, q.Cost.Total, formatDetails(q.Cost.Details))
	}
	return tw.Flush()
}

func formatDetails(details map[string]float64) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b []byte
	for i, k := range keys {
		if i > 0 {
			b = append(b, ' ')
		}
		b = fmt.Appendf(b, "%s=%.2f", k, details[k])
	}
	return string(b)
}
