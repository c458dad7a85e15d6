package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/gavel-org/gavel-cli/internal/config"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// SelectorAdapter handles interactive proposal selection.
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter.
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectProposal asks the user to pick one proposal from a list.
func (s *SelectorAdapter) SelectProposal(ctx context.Context, items []*usecase.ProposalItem, prompt string) (*usecase.ProposalItem, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no proposals available for selection")
	}
	if len(items) == 1 {
		return items[0], nil
	}

	options := formatProposalOptions(items)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          fuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return items[index], nil
}

func formatProposalOptions(items []*usecase.ProposalItem) []string {
	options := make([]string, len(items))
	for i, item := range items {
		remaining := ""
		if item.Status.BlocksRemaining != nil {
			remaining = fmt.Sprintf(", %d blocks left", *item.Status.BlocksRemaining)
		}
		options[i] = fmt.Sprintf("#%d by %s (%s%s)",
			item.Snapshot.ID,
			item.Snapshot.Proposer.Hex(),
			item.Status.Phase,
			remaining,
		)
	}
	return options
}

// fuzzySearchFunc builds a promptui searcher: substring match first, then
// fuzzy match.
func fuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])
		if strings.Contains(item, input) {
			return true
		}
		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.ProposalSelector = (*SelectorAdapter)(nil)
