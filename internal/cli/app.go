package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/84emllc/mcp-toggl/internal/cache"
	"github.com/84emllc/mcp-toggl/internal/config"
	"github.com/84emllc/mcp-toggl/internal/store"
	"github.com/84emllc/mcp-toggl/internal/toggl"
	"github.com/84emllc/mcp-toggl/internal/tools"
)

// app holds the wired-up core for one command invocation.
type app struct {
	cfg      config.Config
	api      *toggl.API
	cache    *cache.Manager
	registry *tools.Registry
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	initLogger(cfg.LogLevel)

	api := toggl.NewAPI(cfg.APIToken, cfg.APIURL, cfg.CacheBatchSize)
	mgr := cache.NewManager(api, store.New(cfg.CacheTTL, cfg.CacheMaxSize))
	svc := tools.NewService(api, mgr, cfg.DefaultWorkspaceID)

	return &app{
		cfg:      cfg,
		api:      api,
		cache:    mgr,
		registry: svc.Registry(),
	}, nil
}

func initLogger(level string) {
	var logger *zap.Logger
	if level == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	zap.ReplaceGlobals(logger)
}

// runTool dispatches one tool invocation and prints the result as JSON. A
// failed result sets the exit code instead of returning an error, since the
// failure is already rendered.
func runTool(name string, args any) error {
	a, err := newApp()
	if err != nil {
		exitCode = ExitRuntimeError
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil
	}

	var raw json.RawMessage
	if args != nil {
		raw, err = json.Marshal(args)
		if err != nil {
			return fmt.Errorf("encoding arguments: %w", err)
		}
	}

	result := a.registry.Dispatch(context.Background(), name, raw)
	return printResult(result)
}

func printResult(result tools.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))

	if !result.OK() {
		switch result.Kind() {
		case tools.ErrInvalidArgs:
			exitCode = ExitUsageError
		default:
			exitCode = ExitToolError
		}
	}
	return nil
}
