package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"infografias.nextwaveia.mx/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Validate the catalog and list its packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := setup(cmd)
			if err != nil {
				return err
			}

			c := application.Catalog
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PART\tID\tNAME\tPRICE\tTIME\tFEATURES\tBADGE")
			for _, p := range catalog.Parts() {
				for _, r := range c.Records(p) {
					badge := "-"
					if r.Badge != nil {
						badge = string(r.Badge.Tone)
					}
					fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%d\t%s\n",
						int(p), r.ID, r.Name, r.Price, r.Time, len(r.Includes), badge)
				}
			}
			return tw.Flush()
		},
	}
}
