package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	chainHeader     = color.New(color.BgCyan, color.FgBlack)
	chainHeaderBold = color.New(color.BgCyan, color.FgBlack, color.Bold)
	contractStyle   = color.New(color.FgGreen, color.Bold)
	timestampStyle  = color.New(color.Faint)
)

var deploymentColumns = []string{"contract", "address", "network", "deployer", "deployed at"}

// DeploymentsRenderer renders deployment lists as tables grouped by chain
type DeploymentsRenderer struct {
	out   io.Writer
	color bool
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, color bool) *DeploymentsRenderer {
	return &DeploymentsRenderer{
		out:   out,
		color: color,
	}
}

// RenderDeploymentList renders deployments grouped by chain
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	// Deployments arrive sorted by chain, so grouping keeps the order
	chainIDs := lo.Uniq(lo.Map(result.Deployments, func(d *models.Deployment, _ int) uint64 {
		return d.ChainID
	}))
	byChain := lo.GroupBy(result.Deployments, func(d *models.Deployment) uint64 {
		return d.ChainID
	})

	for _, chainID := range chainIDs {
		label := fmt.Sprintf(" ⛓ %-12s", "chain:")
		value := fmt.Sprintf("%-30d", chainID)
		fmt.Fprintf(r.out, "%s%s\n", paint(r.color, chainHeader, label), paint(r.color, chainHeaderBold, value))
		fmt.Fprintln(r.out, r.renderTable(byChain[chainID]))
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "Total deployments: %d\n", result.Summary.Total)
	return nil
}

func (r *DeploymentsRenderer) renderTable(deployments []*models.Deployment) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Format.Header = text.FormatDefault

	title := cases.Title(language.English)
	header := make(table.Row, len(deploymentColumns))
	for i, column := range deploymentColumns {
		header[i] = title.String(column)
	}
	t.AppendHeader(header)

	for _, d := range deployments {
		network := d.Network
		if network == "" {
			network = "-"
		}
		t.AppendRow(table.Row{
			paint(r.color, contractStyle, d.ContractName),
			paint(r.color, addressStyle, d.Address),
			network,
			d.ShortDeployer(),
			paint(r.color, timestampStyle, d.CreatedAt.Format("2006-01-02 15:04:05")),
		})
	}

	return t.Render()
}
