package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ssb-deploy/internal/cli/render"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List all networks configured in ssb.toml [networks] and foundry.toml [rpc_endpoints].

This command shows all available networks and attempts to fetch their chain IDs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{QueryChainIDs: !offline})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive)
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Do not query RPC endpoints for chain IDs")

	return cmd
}
