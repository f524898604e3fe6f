package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/melisasvr/dayflow/internal/optimizer"
	"github.com/melisasvr/dayflow/internal/task"
)

var (
	addDescription string
	addPriority    string
	addDue         string
	addHours       float64
	addEnergy      int
	addTags        []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to the backlog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prio, err := task.ParsePriority(addPriority)
		if err != nil {
			return err
		}

		var deadline *time.Time
		if addDue != "" {
			d, err := parseDeadline(addDue)
			if err != nil {
				return err
			}
			deadline = &d
		}

		o, err := openOptimizer()
		if err != nil {
			return err
		}

		t := o.AddTask(optimizer.TaskInput{
			Title:          args[0],
			Description:    addDescription,
			Priority:       prio,
			Deadline:       deadline,
			EstimatedHours: addHours,
			EnergyRequired: addEnergy,
			Tags:           addTags,
		})

		if err := o.Save(); err != nil {
			return err
		}

		cmd.Printf("Added %s: %s (priority: %s)\n", t.ID, t.Title, t.Priority)
		return nil
	},
}

// parseDeadline accepts RFC 3339 or a bare date, interpreted in local time.
func parseDeadline(s string) (time.Time, error) {
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q (expected 2006-01-02 or RFC 3339)", s)
	}
	return d, nil
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority: low, medium, high, or urgent")
	addCmd.Flags().StringVar(&addDue, "due", "", "Deadline (2006-01-02 or RFC 3339)")
	addCmd.Flags().Float64Var(&addHours, "hours", 1.0, "Estimated hours of effort")
	addCmd.Flags().IntVar(&addEnergy, "energy", 5, "Energy level required (1-10)")
	addCmd.Flags().StringSliceVarP(&addTags, "tag", "t", nil, "Task tag (repeatable)")
	rootCmd.AddCommand(addCmd)
}
