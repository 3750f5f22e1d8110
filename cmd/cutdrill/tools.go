package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cutdrill/pkg/tool"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List drill presets (HSS in aluminium)",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tØ (mm)\tV (m/min)\tRPM\tf/rev (mm)\tPLUNGE (mm/min)")
		for _, p := range tool.AluminumHSS() {
			fmt.Fprintf(w, "%s\t%.1f\t%.0f\t%d\t%.3f\t%d\n",
				p.Name, p.DiamMM, p.SurfaceMPM, p.RPM, p.FeedPerRev, p.PlungeFeed)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
