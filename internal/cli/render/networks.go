package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// NetworksRenderer renders the known network configurations.
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer.
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render prints the networks table.
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Chain ID", "RPC", "Contracts"})

	for _, network := range result.Networks {
		configured := lo.CountBy([]string{network.AuctionHouse, network.Governor, network.Token}, func(addr string) bool {
			return addr != ""
		})
		rpc := network.RPCURL
		if rpc == "" {
			rpc = "-"
		}
		t.AppendRow(table.Row{network.Name, network.ChainID, rpc, fmt.Sprintf("%d/3", configured)})
	}

	t.Render()
	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
