package cmd

import (
	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openOptimizer()
		if err != nil {
			return err
		}

		tasks := o.Tasks()
		shown := 0
		for _, t := range tasks {
			if !listAll && t.Status.Terminal() {
				continue
			}
			shown++
			cmd.Printf("%-10s %-12s %-8s %s", t.ID, t.Status, t.Priority, t.Title)
			if t.Deadline != nil {
				cmd.Printf("  (due %s)", t.Deadline.Format("2006-01-02"))
			}
			cmd.Println()
		}
		if shown == 0 {
			if listAll {
				cmd.Println("no tasks")
			} else {
				cmd.Println("no open tasks")
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include completed and cancelled tasks")
	rootCmd.AddCommand(listCmd)
}
