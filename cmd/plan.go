package cmd

import (
	"github.com/spf13/cobra"
	"github.com/melisasvr/dayflow/internal/optimizer"
	"github.com/melisasvr/dayflow/internal/report"
	"github.com/melisasvr/dayflow/internal/tui"
)

var (
	planFormat string
	planWatch  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the daily recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := planFormat
		if format == "" {
			format = cfg.OutputFormat
		}

		if format == "tui" {
			o, err := openOptimizer()
			if err != nil {
				return err
			}
			return tui.Run(o.DailyReport())
		}

		renderer := report.ByFormat(format)
		render := func() error {
			o, err := openOptimizer()
			if err != nil {
				return err
			}
			rep := o.DailyReport()
			out, err := renderer.Render(&rep)
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		}

		if err := render(); err != nil {
			return err
		}
		if !planWatch {
			return nil
		}

		// Re-render whenever another dayflow invocation rewrites the
		// snapshot. Runs until interrupted.
		path, err := optimizer.StatePath(cfg.DataDir)
		if err != nil {
			return err
		}
		return optimizer.WatchSnapshot(cmd.Context(), path, func() {
			if err := render(); err != nil {
				cmd.PrintErrf("re-render failed: %v\n", err)
			}
		})
	},
}

func init() {
	planCmd.Flags().StringVar(&planFormat, "format", "", "Output format: text, markdown, json, or tui (overrides config)")
	planCmd.Flags().BoolVar(&planWatch, "watch", false, "Keep running and re-render when state changes")
	rootCmd.AddCommand(planCmd)
}
