package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fontlens/fontlens/pkg/app"
	"github.com/fontlens/fontlens/pkg/backend"
	"github.com/fontlens/fontlens/pkg/catalog"
	"github.com/fontlens/fontlens/pkg/types"
)

var (
	listFlags = struct {
		Filter string
	}{}

	list = &cobra.Command{
		Use:   "list",
		Short: "Print the enumerated fonts as a table and exit",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			t, err := backend.ParseType(cfg.Backend)
			if err != nil {
				return err
			}
			b, err := app.NewBackend(t, cfg)
			if err != nil {
				return err
			}

			c := catalog.New()
			if err := c.Refresh(b); err != nil {
				return err
			}
			c.SetFilter(listFlags.Filter)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FAMILY\tSTYLE\tWEIGHT\tITALIC\tFIXED\tVARIABLE\tAXES\tPATH")
			for _, r := range c.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
					r.Family, r.Style, r.Weight,
					types.YesNo(r.Italic), types.YesNo(r.FixedPitch), types.YesNo(r.Variable),
					r.Axes, r.Path)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), c.Status())
			return nil
		},
	}
)

func init() {
	list.Flags().StringVarP(&listFlags.Filter, "filter", "f", "", "case-insensitive family/style substring")
	root.AddCommand(list)
}
