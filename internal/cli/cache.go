package cli

import (
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the entity cache",
}

var cacheWarmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Pre-fetch workspaces, projects, and clients into the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("cache_warm", map[string]any{
			"workspace_id": flagWorkspace,
		})
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cache and reset its statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("cache_clear", nil)
	},
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool("cache_stats", nil)
	},
}

func init() {
	cacheWarmCmd.Flags().Int64Var(&flagWorkspace, "workspace", 0, "Warm only this workspace")

	cacheCmd.AddCommand(cacheWarmCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
}
