package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/ssb-deploy/internal/config"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// DeployRenderer renders the outcome of a deployment
type DeployRenderer struct {
	out   io.Writer
	info  io.Writer
	color bool
}

// NewDeployRenderer creates a new deploy renderer. The address line goes to
// out, everything else goes to info.
func NewDeployRenderer(out, info io.Writer, color bool) *DeployRenderer {
	return &DeployRenderer{
		out:   out,
		info:  info,
		color: color,
	}
}

// RenderDeployment prints the deployed address and the deployment details
func (r *DeployRenderer) RenderDeployment(result *usecase.DeployContractResult) error {
	if _, err := fmt.Fprintf(r.out, "ssb deployed to: %s\n", result.Address.Hex()); err != nil {
		return err
	}

	fmt.Fprintf(r.info, "%s %s\n", paint(r.color, labelStyle, "Transaction:"), result.TxHash.Hex())
	if d := result.Deployment; d != nil {
		fmt.Fprintf(r.info, "%s %s\n", paint(r.color, labelStyle, "Deployer:   "), d.Deployer)
		fmt.Fprintf(r.info, "%s %s (%d)\n", paint(r.color, labelStyle, "Network:    "), d.Network, d.ChainID)
	}
	if link := r.explorerLink(result); link != "" {
		fmt.Fprintf(r.info, "%s %s\n", paint(r.color, labelStyle, "Explorer:   "), link)
	}
	if !result.Recorded {
		fmt.Fprintln(r.info, paint(r.color, warningStyle, "⚠️  Deployment was not recorded in the registry"))
	}
	return nil
}

func (r *DeployRenderer) explorerLink(result *usecase.DeployContractResult) string {
	base := result.ExplorerURL
	if base == "" && result.Deployment != nil {
		base = config.ExplorerURLForChain(result.Deployment.ChainID)
	}
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/address/" + result.Address.Hex()
}
