package deals_services

import (
	"time"

	deals_enums "clientbase-backend/internal/features/deals/enums"
	deals_models "clientbase-backend/internal/features/deals/models"
)

// DeriveDealStatus maps the stage flags to a deal status. IsClosed wins when
// a stage carries both flags set by a bad import.
func DeriveDealStatus(stage *deals_models.PipelineStage) deals_enums.DealStatus {
	if stage.IsClosed {
		return deals_enums.DealStatusWon
	}

	if stage.IsLost {
		return deals_enums.DealStatusLost
	}

	return deals_enums.DealStatusOpen
}

// ApplyStageTransition moves a deal onto a stage and keeps the derived
// fields consistent: the close date is stamped when the deal reaches a
// terminal stage and cleared when it reopens. Moving between two terminal
// stages keeps the original close date.
func ApplyStageTransition(
	deal *deals_models.Deal,
	stage *deals_models.PipelineStage,
	now time.Time,
) {
	previousStatus := deal.Status

	deal.StageID = stage.ID
	deal.Status = DeriveDealStatus(stage)

	switch {
	case deal.Status.IsTerminal() && !previousStatus.IsTerminal():
		closeDate := now
		deal.ActualCloseDate = &closeDate
	case !deal.Status.IsTerminal():
		deal.ActualCloseDate = nil
	}
}
