package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitToolError    = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "mcp-toggl",
	Short: "Toggl Track tool server and CLI",
	Long:  "mcp-toggl exposes the Toggl Track API as agent-callable tools, with a local cache that resolves workspace, project, and client names without a network round trip per record.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(workspacesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print mcp-toggl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "mcp-toggl version %s\n", version)
	},
}
