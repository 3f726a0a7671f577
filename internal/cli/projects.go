package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Work with projects",
}

var (
	flagProjectName   string
	flagProjectClient int64
	flagProjectActive bool
	flagProjectColor  string
)

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in a workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			exitCode = ExitRuntimeError
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		wid := flagWorkspace
		if wid == 0 {
			wid = a.cfg.DefaultWorkspaceID
		}
		if wid == 0 {
			return fmt.Errorf("--workspace is required (or set TOGGL_DEFAULT_WORKSPACE_ID)")
		}
		projects, err := a.api.ListProjects(context.Background(), wid)
		if err != nil {
			exitCode = ExitToolError
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		return printJSON(projects)
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("toggl_create_project", map[string]any{
			"workspace_id": flagWorkspace,
			"name":         flagProjectName,
			"client_id":    flagProjectClient,
			"billable":     flagBillable,
			"color":        flagProjectColor,
		})
	},
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a project (only the flags you pass are changed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		update := map[string]any{
			"workspace_id": flagWorkspace,
			"project_id":   flagProject,
		}
		if cmd.Flags().Changed("name") {
			update["name"] = flagProjectName
		}
		if cmd.Flags().Changed("client") {
			update["client_id"] = flagProjectClient
		}
		if cmd.Flags().Changed("active") {
			update["active"] = flagProjectActive
		}
		if cmd.Flags().Changed("billable") {
			update["billable"] = flagBillable
		}
		if cmd.Flags().Changed("color") {
			update["color"] = flagProjectColor
		}
		return runTool("toggl_update_project", update)
	},
}

func init() {
	projectsListCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID")

	projectsCreateCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID")
	projectsCreateCmd.Flags().StringVar(&flagProjectName, "name", "", "Project name")
	projectsCreateCmd.Flags().Int64Var(&flagProjectClient, "client", 0, "Client ID")
	projectsCreateCmd.Flags().BoolVar(&flagBillable, "billable", false, "Mark as billable")
	projectsCreateCmd.Flags().StringVar(&flagProjectColor, "color", "", "Project color")

	projectsUpdateCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID")
	projectsUpdateCmd.Flags().Int64Var(&flagProject, "id", 0, "Project ID")
	projectsUpdateCmd.Flags().StringVar(&flagProjectName, "name", "", "New project name")
	projectsUpdateCmd.Flags().Int64Var(&flagProjectClient, "client", 0, "New client ID")
	projectsUpdateCmd.Flags().BoolVar(&flagProjectActive, "active", true, "Active state")
	projectsUpdateCmd.Flags().BoolVar(&flagBillable, "billable", false, "Billable state")
	projectsUpdateCmd.Flags().StringVar(&flagProjectColor, "color", "", "New project color")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsUpdateCmd)
}
