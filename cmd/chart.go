package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"seat-booking-cli/chart"
	"seat-booking-cli/report"
)

func newChartCmd(a *app) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "chart",
		Short: "Draw the bookings-by-fare-class chart",
		Long:  `Render a bar chart of sample booking counts per fare class to a PNG file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			defer a.teardown()

			path := output
			if path == "" {
				path = a.cfg.ChartPath()
			}
			if err := chart.Save(path, chart.SampleCounts); err != nil {
				a.log.Error("chart failed", "path", path, "err", err)
				return err
			}
			a.log.Info("chart saved", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), report.Success(fmt.Sprintf("Chart saved to %s", path)))
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "chart file (default <outputs-dir>/bookings_chart.png)")
	return c
}
