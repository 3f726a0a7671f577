package cli

import (
	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Work with time entries",
}

var (
	flagStartDate   string
	flagEndDate     string
	flagWorkspace   int64
	flagProject     int64
	flagDescription string
	flagTags        []string
	flagBillable    bool
	flagEntryID     int64
)

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries with resolved names",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("toggl_list_entries", map[string]any{
			"start_date": flagStartDate,
			"end_date":   flagEndDate,
		})
	},
}

var entriesCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the running time entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("toggl_current_entry", nil)
	},
}

var entriesStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new time entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("toggl_start_entry", map[string]any{
			"workspace_id": flagWorkspace,
			"project_id":   flagProject,
			"description":  flagDescription,
			"tags":         flagTags,
			"billable":     flagBillable,
		})
	},
}

var entriesStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running time entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("toggl_stop_entry", map[string]any{
			"workspace_id": flagWorkspace,
			"entry_id":     flagEntryID,
		})
	},
}

var entriesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a time entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("toggl_delete_entry", map[string]any{
			"workspace_id": flagWorkspace,
			"entry_id":     flagEntryID,
		})
	},
}

func init() {
	entriesListCmd.Flags().StringVar(&flagStartDate, "start", "", "Start date (RFC 3339 or YYYY-MM-DD)")
	entriesListCmd.Flags().StringVar(&flagEndDate, "end", "", "End date (RFC 3339 or YYYY-MM-DD)")

	entriesStartCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID (defaults to TOGGL_DEFAULT_WORKSPACE_ID)")
	entriesStartCmd.Flags().Int64Var(&flagProject, "project", 0, "Project ID")
	entriesStartCmd.Flags().StringVar(&flagDescription, "description", "", "Entry description")
	entriesStartCmd.Flags().StringSliceVar(&flagTags, "tags", nil, "Tags")
	entriesStartCmd.Flags().BoolVar(&flagBillable, "billable", false, "Mark as billable")

	entriesStopCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID")
	entriesStopCmd.Flags().Int64Var(&flagEntryID, "id", 0, "Time entry ID")

	entriesDeleteCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID")
	entriesDeleteCmd.Flags().Int64Var(&flagEntryID, "id", 0, "Time entry ID")

	entriesCmd.AddCommand(entriesListCmd)
	entriesCmd.AddCommand(entriesCurrentCmd)
	entriesCmd.AddCommand(entriesStartCmd)
	entriesCmd.AddCommand(entriesStopCmd)
	entriesCmd.AddCommand(entriesDeleteCmd)
}
