package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ssb-deploy/internal/app"
	"github.com/trebuchet-org/ssb-deploy/internal/cli/render"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the SSB contract",
		Long: `Compile the project, deploy the SSB contract and wait for the deployment
to be mined.

The contract is deployed with its fixed constructor arguments:
  name             "SSB Gang"
  symbol           "SSB"
  beneficiary      0x76cBbaF24a9b9008E534399167b658Ea57F1c750
  royaltyReceiver  0x76cBbaF24a9b9008E534399167b658Ea57F1c750

The deployed address is printed to stdout as "ssb deployed to: <address>".
There is no confirmation timeout unless one is configured.`,
		Example: `  # Deploy to a local anvil node
  ssb deploy --network http://localhost:8545

  # Deploy to a network from ssb.toml or foundry.toml
  SSB_PRIVATE_KEY=0x... ssb deploy --network sepolia`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := confirmDeployment(cmd.Context(), app); err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				ContractName: domain.SSBArtifact,
				Args:         domain.SSBConstructorArgs(),
			})
			if err != nil {
				return err
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), !app.Config.NonInteractive)
			return renderer.RenderDeployment(result)
		},
	}

	cmd.Flags().Bool("skip-build", false, "Use existing artifacts without compiling")
	cmd.Flags().Duration("timeout", 0, "Give up waiting for confirmation after this long (0 waits indefinitely)")

	return cmd
}

// confirmDeployment asks before broadcasting to a chain that is not a local dev node
func confirmDeployment(ctx context.Context, app *app.App) error {
	if app.Config.NonInteractive {
		return nil
	}

	// Connection and signer problems are reported by the deployment itself
	prediction, err := app.PredictAddress.Run(ctx)
	if err != nil {
		app.Log.Debug("skipping confirmation", "error", err)
		return nil
	}

	if domain.LocalChainIDs[prediction.ChainID] {
		return nil
	}

	network := "custom"
	if app.Config.Network != nil {
		network = app.Config.Network.Name
	}

	ok, err := app.Confirmer.Confirm(ctx, fmt.Sprintf("Deploy %s to %s (chain %d) from %s",
		domain.SSBArtifact, network, prediction.ChainID, prediction.Sender.Hex()))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("deployment cancelled")
	}
	return nil
}
