package cli

import (
	"bytes"
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gavel-org/gavel-cli/internal/app"
	"github.com/gavel-org/gavel-cli/internal/cli/render"
	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// watchRefetchEvery is how often watch mode refetches chain state. The
// countdown between refetches is derived locally from the last snapshot.
const watchRefetchEvery = 15 * time.Second

// runStatusWatch keeps the auction status on screen with a one-second
// countdown until the user quits.
func runStatusWatch(cmd *cobra.Command, a *app.App) error {
	result, err := a.GetAuctionStatus.Run(cmd.Context())
	if err != nil {
		return err
	}

	m := watchModel{
		ctx:      cmd.Context(),
		app:      a,
		snapshot: result.Snapshot,
		status:   result.Status,
	}
	p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
	_, err = p.Run()
	return err
}

type watchTickMsg time.Time

type watchRefreshMsg struct {
	result *usecase.AuctionStatusResult
	err    error
}

type watchModel struct {
	ctx context.Context
	app *app.App

	snapshot *domain.AuctionSnapshot
	status   *domain.AuctionStatus
	err      error

	ticks int
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) refetch() tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.GetAuctionStatus.Run(m.ctx)
		return watchRefreshMsg{result: result, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case watchTickMsg:
		// Phase and countdown are re-derived locally between refetches.
		m.ticks++
		status, err := domain.EvaluateAuction(m.snapshot, time.Time(msg))
		if err != nil {
			m.err = err
		} else {
			m.status = status
			m.err = nil
		}
		if m.ticks%int(watchRefetchEvery/time.Second) == 0 {
			return m, tea.Batch(watchTick(), m.refetch())
		}
		return m, watchTick()

	case watchRefreshMsg:
		if msg.err != nil {
			// Keep the stale snapshot on screen; the next refetch may
			// succeed.
			m.err = msg.err
			return m, nil
		}
		m.snapshot = msg.result.Snapshot
		m.status = msg.result.Status
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m watchModel) View() string {
	var buf bytes.Buffer
	renderer := render.NewAuctionRenderer(&buf)
	if err := renderer.Render(&usecase.AuctionStatusResult{
		Snapshot:   m.snapshot,
		Status:     m.status,
		ObservedAt: time.Now(),
	}); err != nil {
		return err.Error() + "\n"
	}
	if m.err != nil {
		buf.WriteString("\n" + render.FormatWarning("refresh failed: "+m.err.Error()) + "\n")
	}
	buf.WriteString("\nPress q to quit.\n")
	return buf.String()
}
