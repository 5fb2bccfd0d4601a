package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

var errorStyle = color.New(color.FgRed)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the list of networks with their chain IDs
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in ssb.toml [networks] or foundry.toml [rpc_endpoints]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		switch {
		case network.Error != nil:
			fmt.Fprintf(r.out, "  %s %s - Error: %v\n", paint(r.color, errorStyle, "❌"), network.Name, network.Error)
		case network.ChainID == 0:
			fmt.Fprintf(r.out, "  %s %s - %s\n", paint(r.color, warningStyle, "•"), network.Name, network.RPCURL)
		default:
			fmt.Fprintf(r.out, "  %s %s - Chain ID: %d\n", paint(r.color, successStyle, "✅"), network.Name, network.ChainID)
		}
	}

	return nil
}
