package deals_dto

import (
	"time"

	deals_models "clientbase-backend/internal/features/deals/models"

	"github.com/google/uuid"
)

type CreateDealRequestDTO struct {
	ClientID          uuid.UUID  `json:"clientId" binding:"required"`
	PipelineID        *uuid.UUID `json:"pipelineId"`
	StageID           *uuid.UUID `json:"stageId"`
	Title             string     `json:"title" binding:"required"`
	Amount            *float64   `json:"amount"`
	Currency          string     `json:"currency"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate"`
}

type UpdateDealRequestDTO struct {
	Title             *string    `json:"title"`
	Amount            *float64   `json:"amount"`
	Currency          *string    `json:"currency"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate"`
}

type MoveDealRequestDTO struct {
	StageID uuid.UUID `json:"stageId" binding:"required"`
}

// BoardDealDTO is a deal plus the client fields the board renders. ClientName
// is empty when the client lookup degraded.
type BoardDealDTO struct {
	deals_models.Deal
	ClientName string `json:"clientName"`
}

type DealsBoardResponseDTO struct {
	Pipeline     *deals_models.SalesPipeline `json:"pipeline"`
	DealsByStage map[string][]BoardDealDTO   `json:"dealsByStage"`
}

type DealStatsDTO struct {
	TotalDeals int     `json:"totalDeals"`
	OpenDeals  int     `json:"openDeals"`
	WonDeals   int     `json:"wonDeals"`
	LostDeals  int     `json:"lostDeals"`
	OpenValue  float64 `json:"openValue"`
	WonValue   float64 `json:"wonValue"`
}
