package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ssb-deploy/internal/cli/render"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		contractName string
		chainID      uint64
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deployments from registry",
		Long: `List the deployments recorded in .ssb/deployments.json.

With --network, only deployments on that network's chain are shown.`,
		Example: `  # List all deployments
  ssb list

  # List deployments on sepolia
  ssb list --network sepolia`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				ContractName: contractName,
				ChainID:      chainID,
			})
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentsRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive)
			return renderer.RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Filter by contract name")
	cmd.Flags().Uint64Var(&chainID, "chain", 0, "Filter by chain ID")

	return cmd
}
