package cmd

import (
	"github.com/spf13/cobra"
)

var doneHours float64

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openOptimizer()
		if err != nil {
			return err
		}

		id := args[0]
		before, found := o.Task(id)

		var hours *float64
		if cmd.Flags().Changed("hours") {
			hours = &doneHours
		}
		o.CompleteTask(id, hours)

		if err := o.Save(); err != nil {
			return err
		}

		// The domain layer ignores unknown ids and terminal tasks; say so
		// here instead of pretending something happened.
		switch {
		case !found:
			cmd.Printf("No task with id %s.\n", id)
		case before.Status.Terminal():
			cmd.Printf("Task %s is already %s.\n", id, before.Status)
		default:
			cmd.Printf("Task %s completed.\n", id)
		}
		return nil
	},
}

func init() {
	doneCmd.Flags().Float64Var(&doneHours, "hours", 0, "Actual hours spent")
	rootCmd.AddCommand(doneCmd)
}
