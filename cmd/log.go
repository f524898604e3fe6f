package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/melisasvr/dayflow/internal/focus"
)

var (
	logFocus        int
	logEnergy       int
	logDistractions int
	logTasks        []string
	logTools        []string
	logStart        string
	logEnd          string
	logDuration     time.Duration
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a finished work session",
	Long: `Log a finished work session with its focus score, energy level, and
distraction count. By default the session ends now and lasted --duration;
pass --start/--end (RFC 3339) for explicit timestamps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		end := time.Now()
		if logEnd != "" {
			t, err := time.Parse(time.RFC3339, logEnd)
			if err != nil {
				return fmt.Errorf("invalid --end %q: %w", logEnd, err)
			}
			end = t
		}

		start := end.Add(-logDuration)
		if logStart != "" {
			t, err := time.Parse(time.RFC3339, logStart)
			if err != nil {
				return fmt.Errorf("invalid --start %q: %w", logStart, err)
			}
			start = t
		}

		if end.Before(start) {
			return fmt.Errorf("session ends (%s) before it starts (%s)",
				end.Format(time.RFC3339), start.Format(time.RFC3339))
		}

		o, err := openOptimizer()
		if err != nil {
			return err
		}

		tasks := logTasks
		if tasks == nil {
			tasks = []string{}
		}
		tools := logTools
		if tools == nil {
			tools = []string{}
		}

		o.LogSession(focus.Session{
			ID:             uuid.New().String(),
			StartTime:      start,
			EndTime:        end,
			TasksCompleted: tasks,
			FocusScore:     logFocus,
			EnergyLevel:    logEnergy,
			Distractions:   logDistractions,
			ToolsUsed:      tools,
		})

		if err := o.Save(); err != nil {
			return err
		}

		cmd.Printf("Session logged: %02d:00 start, focus %d/10, energy %d/10, %d distractions.\n",
			start.Hour(), logFocus, logEnergy, logDistractions)
		return nil
	},
}

func init() {
	logCmd.Flags().IntVar(&logFocus, "focus", 5, "Focus score for the session (1-10)")
	logCmd.Flags().IntVar(&logEnergy, "energy", 5, "Energy level during the session (1-10)")
	logCmd.Flags().IntVar(&logDistractions, "distractions", 0, "Number of distractions")
	logCmd.Flags().StringSliceVar(&logTasks, "task", nil, "Id of a task completed during the session (repeatable)")
	logCmd.Flags().StringSliceVar(&logTools, "tool", nil, "Tool used during the session (repeatable)")
	logCmd.Flags().StringVar(&logStart, "start", "", "Session start (RFC 3339)")
	logCmd.Flags().StringVar(&logEnd, "end", "", "Session end (RFC 3339, default now)")
	logCmd.Flags().DurationVar(&logDuration, "duration", time.Hour, "Session length when --start is not given")
	rootCmd.AddCommand(logCmd)
}
