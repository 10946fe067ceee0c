package deals_services

import (
	"testing"
	"time"

	deals_enums "clientbase-backend/internal/features/deals/enums"
	deals_models "clientbase-backend/internal/features/deals/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newStage(isClosed, isLost bool) *deals_models.PipelineStage {
	return &deals_models.PipelineStage{
		ID:       uuid.New(),
		IsClosed: isClosed,
		IsLost:   isLost,
	}
}

func Test_DeriveDealStatus(t *testing.T) {
	assert.Equal(t, deals_enums.DealStatusWon, DeriveDealStatus(newStage(true, false)))
	assert.Equal(t, deals_enums.DealStatusLost, DeriveDealStatus(newStage(false, true)))
	assert.Equal(t, deals_enums.DealStatusOpen, DeriveDealStatus(newStage(false, false)))

	// IsClosed wins over IsLost when both are set.
	assert.Equal(t, deals_enums.DealStatusWon, DeriveDealStatus(newStage(true, true)))
}

func Test_ApplyStageTransition_StampsCloseDateOnTerminal(t *testing.T) {
	deal := &deals_models.Deal{Status: deals_enums.DealStatusOpen}
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	wonStage := newStage(true, false)
	ApplyStageTransition(deal, wonStage, now)

	assert.Equal(t, wonStage.ID, deal.StageID)
	assert.Equal(t, deals_enums.DealStatusWon, deal.Status)
	assert.NotNil(t, deal.ActualCloseDate)
	assert.Equal(t, now, *deal.ActualCloseDate)
}

func Test_ApplyStageTransition_ClearsCloseDateOnReopen(t *testing.T) {
	closed := time.Now().UTC()
	deal := &deals_models.Deal{
		Status:          deals_enums.DealStatusWon,
		ActualCloseDate: &closed,
	}

	ApplyStageTransition(deal, newStage(false, false), time.Now().UTC())

	assert.Equal(t, deals_enums.DealStatusOpen, deal.Status)
	assert.Nil(t, deal.ActualCloseDate)
}

func Test_ApplyStageTransition_OpenToOpenLeavesNoCloseDate(t *testing.T) {
	deal := &deals_models.Deal{Status: deals_enums.DealStatusOpen}

	ApplyStageTransition(deal, newStage(false, false), time.Now().UTC())

	assert.Nil(t, deal.ActualCloseDate)
}

func Test_ApplyStageTransition_TerminalToTerminalKeepsOriginalDate(t *testing.T) {
	closed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deal := &deals_models.Deal{
		Status:          deals_enums.DealStatusWon,
		ActualCloseDate: &closed,
	}

	ApplyStageTransition(deal, newStage(false, true), time.Now().UTC())

	assert.Equal(t, deals_enums.DealStatusLost, deal.Status)
	assert.Equal(t, closed, *deal.ActualCloseDate)
}
