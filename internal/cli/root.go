package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/ssb-deploy/internal/app"
	"github.com/trebuchet-org/ssb-deploy/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// cleanupKey is the context key for the app's cleanup function
	cleanupKey contextKey = "cleanup"
)

// AppBuilder creates the application for the command about to run
type AppBuilder func(cmd *cobra.Command) (*app.App, func(), error)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(buildApp)
}

func newRootCmd(build AppBuilder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ssb",
		Short: "Deploy the SSB NFT contract",
		Long: `ssb compiles the project, deploys the SSB contract with its fixed
constructor arguments and waits until the deployment is mined.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			appInstance, cleanup, err := build(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured; zero waits until the context is cancelled
			cancel := context.CancelFunc(func() {})
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}

			ctx = context.WithValue(ctx, cleanupKey, func() {
				cancel()
				if cleanup != nil {
					cleanup()
				}
			})
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network name or RPC URL (e.g., sepolia, http://localhost:8545)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	predictCmd := NewPredictCmd()
	predictCmd.GroupID = "main"
	rootCmd.AddCommand(predictCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "main"
	rootCmd.AddCommand(listCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// buildApp finds the project, layers flags over config and wires the app
func buildApp(cmd *cobra.Command) (*app.App, func(), error) {
	projectRoot, err := config.FindProjectRoot()
	if err != nil {
		return nil, nil, err
	}

	v := config.SetupViper(projectRoot)
	bindGlobalFlags(v, cmd)

	return app.InitApp(v)
}

// flagKeys maps command flags to their viper keys
var flagKeys = map[string]string{
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"network":         "network",
	"skip-build":      "skip_build",
	"timeout":         "timeout",
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only flags that have been set override file and env values
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// Execute runs the CLI and maps the outcome to a process exit code
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, NewRootCmd(), args, stdout, stderr)
}

func execute(ctx context.Context, rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if cmd != nil && cmd.Context() != nil {
		if cleanup, ok := cmd.Context().Value(cleanupKey).(func()); ok {
			cleanup()
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
