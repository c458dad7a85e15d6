package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

func testProposal(endBlock uint64) *domain.ProposalSnapshot {
	return &domain.ProposalSnapshot{
		ID:           7,
		StartBlock:   100,
		EndBlock:     endBlock,
		ForVotes:     big.NewInt(12),
		AgainstVotes: big.NewInt(3),
		AbstainVotes: big.NewInt(1),
	}
}

func TestClassifyProposal(t *testing.T) {
	t.Run("all recognized codes map to named phases", func(t *testing.T) {
		want := []string{
			"Pending", "Active", "Canceled", "Defeated",
			"Succeeded", "Queued", "Expired", "Executed",
		}
		for code := uint8(0); code <= 7; code++ {
			status, err := domain.ClassifyProposal(code, testProposal(200), 150)
			require.NoError(t, err)
			assert.Equal(t, want[code], status.Phase.String())
		}
	})

	t.Run("active proposal reports blocks remaining", func(t *testing.T) {
		status, err := domain.ClassifyProposal(uint8(domain.ProposalActive), testProposal(250), 150)
		require.NoError(t, err)
		require.NotNil(t, status.BlocksRemaining)
		assert.Equal(t, uint64(100), *status.BlocksRemaining)
	})

	t.Run("blocks remaining clamps to zero", func(t *testing.T) {
		status, err := domain.ClassifyProposal(uint8(domain.ProposalActive), testProposal(140), 150)
		require.NoError(t, err)
		require.NotNil(t, status.BlocksRemaining)
		assert.Zero(t, *status.BlocksRemaining)
	})

	t.Run("blocks remaining absent outside active phase", func(t *testing.T) {
		status, err := domain.ClassifyProposal(uint8(domain.ProposalExecuted), testProposal(250), 150)
		require.NoError(t, err)
		assert.Nil(t, status.BlocksRemaining)
	})

	t.Run("code outside range fails", func(t *testing.T) {
		_, err := domain.ClassifyProposal(8, testProposal(250), 150)
		var unknown domain.UnknownPhaseErr
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, uint8(8), unknown.Code)
	})

	t.Run("classification is idempotent", func(t *testing.T) {
		snap := testProposal(250)
		first, err := domain.ClassifyProposal(1, snap, 150)
		require.NoError(t, err)
		second, err := domain.ClassifyProposal(1, snap, 150)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
