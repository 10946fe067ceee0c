package deals_services

import (
	deals_dto "clientbase-backend/internal/features/deals/dto"
	deals_enums "clientbase-backend/internal/features/deals/enums"
	deals_models "clientbase-backend/internal/features/deals/models"

	"github.com/google/uuid"
)

// GroupDealsByStage buckets deals under their stage id. Every pipeline stage
// gets a bucket even when empty, so the board renders all columns. Deals on
// stages the pipeline no longer has are dropped rather than invented a
// column for.
func GroupDealsByStage(
	pipeline *deals_models.SalesPipeline,
	deals []deals_models.Deal,
	clientNames map[uuid.UUID]string,
) map[string][]deals_dto.BoardDealDTO {
	grouped := map[string][]deals_dto.BoardDealDTO{}

	for _, stage := range pipeline.Stages {
		grouped[stage.ID.String()] = []deals_dto.BoardDealDTO{}
	}

	for _, deal := range deals {
		key := deal.StageID.String()

		bucket, ok := grouped[key]
		if !ok {
			continue
		}

		grouped[key] = append(bucket, deals_dto.BoardDealDTO{
			Deal:       deal,
			ClientName: clientNames[deal.ClientID],
		})
	}

	return grouped
}

// FoldDealStats tallies counts and values in one pass. Deals without an
// amount count toward totals but contribute zero value.
func FoldDealStats(deals []deals_models.Deal) deals_dto.DealStatsDTO {
	stats := deals_dto.DealStatsDTO{TotalDeals: len(deals)}

	for _, deal := range deals {
		amount := 0.0
		if deal.Amount != nil {
			amount = *deal.Amount
		}

		switch deal.Status {
		case deals_enums.DealStatusWon:
			stats.WonDeals++
			stats.WonValue += amount
		case deals_enums.DealStatusLost:
			stats.LostDeals++
		default:
			stats.OpenDeals++
			stats.OpenValue += amount
		}
	}

	return stats
}
