package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newTypesCmd(opts *rootOptions) *cobra.Command {
	var domain string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the keys each registry dispatches on",
		Long: `List the registered keys of the maintenance, trip and content
registries after bootstrapping their built-ins.

Examples:
  fleetctl types
  fleetctl types --domain trip
  fleetctl types --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := opts.registries(cmd.Context(), opts.logger(cmd))
			if err != nil {
				return err
			}

			if domain != "" {
				keys, ok := all[strings.ToLower(domain)]
				if !ok {
					return fmt.Errorf("unknown domain %q", domain)
				}
				all = map[string][]string{strings.ToLower(domain): keys}
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, all)
			}

			domains := make([]string, 0, len(all))
			for d := range all {
				domains = append(domains, d)
			}
			sort.Strings(domains)
			for _, d := range domains {
				fmt.Fprintf(out, "%s: %s\n", d, strings.Join(all[d], ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "only list one domain (maintenance, trip, content)")
	return cmd
}
