package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ssb-deploy/internal/cli/render"
)

// NewPredictCmd creates the predict command
func NewPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Print the address the next deployment will land at",
		Long: `Print the CREATE address of the next transaction sent by the configured
signer. A deploy run right after this lands at the printed address unless the
signer sends another transaction first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.PredictAddress.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewPredictRenderer(cmd.OutOrStdout()).RenderPrediction(result)
		},
	}
}
