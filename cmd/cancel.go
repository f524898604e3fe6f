package cmd

import (
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openOptimizer()
		if err != nil {
			return err
		}

		id := args[0]
		before, found := o.Task(id)
		o.CancelTask(id)

		if err := o.Save(); err != nil {
			return err
		}

		switch {
		case !found:
			cmd.Printf("No task with id %s.\n", id)
		case before.Status.Terminal():
			cmd.Printf("Task %s is already %s.\n", id, before.Status)
		default:
			cmd.Printf("Task %s cancelled.\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}
