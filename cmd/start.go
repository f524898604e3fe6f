package cmd

import (
	"github.com/spf13/cobra"
	"github.com/melisasvr/dayflow/internal/task"
)

var startCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Move a pending task to in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openOptimizer()
		if err != nil {
			return err
		}

		id := args[0]
		before, found := o.Task(id)
		o.StartTask(id)

		if err := o.Save(); err != nil {
			return err
		}

		switch {
		case !found:
			cmd.Printf("No task with id %s.\n", id)
		case before.Status != task.StatusPending:
			cmd.Printf("Task %s is %s; only pending tasks can be started.\n", id, before.Status)
		default:
			cmd.Printf("Task %s started.\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
