package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

var phaseStyles = map[domain.ProposalPhase]*color.Color{
	domain.ProposalPending:   color.New(color.FgYellow),
	domain.ProposalActive:    color.New(color.FgGreen, color.Bold),
	domain.ProposalCanceled:  color.New(color.Faint),
	domain.ProposalDefeated:  color.New(color.FgRed),
	domain.ProposalSucceeded: color.New(color.FgGreen),
	domain.ProposalQueued:    color.New(color.FgCyan),
	domain.ProposalExpired:   color.New(color.Faint),
	domain.ProposalExecuted:  color.New(color.FgHiGreen),
}

// ProposalsRenderer renders proposal lists as a table.
type ProposalsRenderer struct {
	out io.Writer
}

// NewProposalsRenderer creates a new proposals renderer.
func NewProposalsRenderer(out io.Writer) *ProposalsRenderer {
	return &ProposalsRenderer{out: out}
}

// Render prints the proposals table.
func (r *ProposalsRenderer) Render(result *usecase.ListProposalsResult) error {
	if len(result.Items) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Phase", "For", "Against", "Abstain", "Voting Ends"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	for _, item := range result.Items {
		phase := item.Status.Phase.String()
		if style, ok := phaseStyles[item.Status.Phase]; ok {
			phase = style.Sprint(phase)
		}
		ends := "-"
		if item.Status.BlocksRemaining != nil {
			ends = FormatBlocks(*item.Status.BlocksRemaining) + " blocks"
		}
		t.AppendRow(table.Row{
			item.Snapshot.ID,
			phase,
			item.Snapshot.ForVotes,
			item.Snapshot.AgainstVotes,
			item.Snapshot.AbstainVotes,
			ends,
		})
	}

	t.Render()
	fmt.Fprintf(r.out, "\nCurrent block: %s\n", FormatBlocks(result.CurrentBlock))
	return nil
}

var _ Renderer[*usecase.ListProposalsResult] = (*ProposalsRenderer)(nil)
