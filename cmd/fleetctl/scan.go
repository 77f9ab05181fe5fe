package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type scanEntry struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

type scanReport struct {
	Root    string      `json:"root"`
	Units   int         `json:"units"`
	Skipped int         `json:"skipped"`
	Found   []scanEntry `json:"found"`
}

func newScanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Discover trip strategies in a source tree",
		Long: `Scan a directory of Go sources for trip strategies and print the
key each one is discovered under. Without a directory the sources compiled
into fleetctl are scanned.

Only strategy types compiled into fleetctl can be loaded; other tagged types
in the tree are reported as skipped units only when their source fails to
parse.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.strategyRoot = args[0]
			}
			return runScan(cmd, opts)
		},
	}
}

func runScan(cmd *cobra.Command, opts *rootOptions) error {
	s, err := opts.scanner(opts.logger(cmd))
	if err != nil {
		return err
	}
	mapping, err := s.Mapping()
	if err != nil {
		return err
	}
	res := s.LastResult()

	report := scanReport{
		Root:    opts.strategyRoot,
		Units:   res.Units,
		Skipped: res.Skipped,
		Found:   make([]scanEntry, 0, len(mapping)),
	}
	if report.Root == "" {
		report.Root = "(embedded)"
	}
	for key, ref := range mapping {
		report.Found = append(report.Found, scanEntry{Key: key, Type: ref.String()})
	}
	sort.Slice(report.Found, func(i, j int) bool {
		return report.Found[i].Key < report.Found[j].Key
	})

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return writeJSON(out, report)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTYPE")
	for _, e := range report.Found {
		fmt.Fprintf(tw, "%s\t%s\n", e.Key, e.Type)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nscanned %d units in %s, %d skipped, %d found\n",
		report.Units, report.Root, report.Skipped, len(report.Found))
	return nil
}
