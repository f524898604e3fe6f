package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var energyCmd = &cobra.Command{
	Use:   "energy [1-10]",
	Short: "Show or set the current energy level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openOptimizer()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid energy level %q", args[0])
			}
			// Out-of-range levels are silently ignored by the optimizer;
			// the printed value below shows what actually stuck.
			o.SetEnergy(level)
			if err := o.Save(); err != nil {
				return err
			}
		}

		cmd.Printf("Current energy: %d/10\n", o.Energy())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(energyCmd)
}
