package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Work with clients",
}

var flagClientName string

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients in a workspace",
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
		clients, err := a.api.ListClients(context.Background(), wid)
		if err != nil {
			exitCode = ExitToolError
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		return printJSON(clients)
	},
}

var clientsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("toggl_create_client", map[string]any{
			"workspace_id": flagWorkspace,
			"name":         flagClientName,
		})
	},
}

func init() {
	clientsListCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID")

	clientsCreateCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID")
	clientsCreateCmd.Flags().StringVar(&flagClientName, "name", "", "Client name")

	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsCreateCmd)
}
