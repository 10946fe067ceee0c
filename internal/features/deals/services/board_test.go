package deals_services

import (
	"testing"

	deals_enums "clientbase-backend/internal/features/deals/enums"
	deals_models "clientbase-backend/internal/features/deals/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_GroupDealsByStage_BucketsEveryStage(t *testing.T) {
	stageA := deals_models.PipelineStage{ID: uuid.New(), Name: "New"}
	stageB := deals_models.PipelineStage{ID: uuid.New(), Name: "Won", IsClosed: true}
	pipeline := &deals_models.SalesPipeline{
		ID:     uuid.New(),
		Stages: []deals_models.PipelineStage{stageA, stageB},
	}

	clientID := uuid.New()
	deals := []deals_models.Deal{
		{ID: uuid.New(), StageID: stageA.ID, ClientID: clientID},
		{ID: uuid.New(), StageID: stageA.ID, ClientID: clientID},
	}

	grouped := GroupDealsByStage(pipeline, deals, map[uuid.UUID]string{clientID: "Acme"})

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[stageA.ID.String()], 2)
	assert.Empty(t, grouped[stageB.ID.String()])
	assert.Equal(t, "Acme", grouped[stageA.ID.String()][0].ClientName)
}

func Test_GroupDealsByStage_DropsDealsOnUnknownStages(t *testing.T) {
	stage := deals_models.PipelineStage{ID: uuid.New()}
	pipeline := &deals_models.SalesPipeline{Stages: []deals_models.PipelineStage{stage}}

	deals := []deals_models.Deal{
		{ID: uuid.New(), StageID: uuid.New()},
	}

	grouped := GroupDealsByStage(pipeline, deals, nil)

	assert.Len(t, grouped, 1)
	assert.Empty(t, grouped[stage.ID.String()])
}

func Test_GroupDealsByStage_MissingClientNameDegradesToEmpty(t *testing.T) {
	stage := deals_models.PipelineStage{ID: uuid.New()}
	pipeline := &deals_models.SalesPipeline{Stages: []deals_models.PipelineStage{stage}}

	deals := []deals_models.Deal{
		{ID: uuid.New(), StageID: stage.ID, ClientID: uuid.New()},
	}

	grouped := GroupDealsByStage(pipeline, deals, map[uuid.UUID]string{})

	assert.Equal(t, "", grouped[stage.ID.String()][0].ClientName)
}

func Test_FoldDealStats(t *testing.T) {
	amount := func(v float64) *float64 { return &v }

	deals := []deals_models.Deal{
		{Status: deals_enums.DealStatusOpen, Amount: amount(100)},
		{Status: deals_enums.DealStatusOpen, Amount: nil},
		{Status: deals_enums.DealStatusWon, Amount: amount(250)},
		{Status: deals_enums.DealStatusLost, Amount: amount(999)},
	}

	stats := FoldDealStats(deals)

	assert.Equal(t, 4, stats.TotalDeals)
	assert.Equal(t, 2, stats.OpenDeals)
	assert.Equal(t, 1, stats.WonDeals)
	assert.Equal(t, 1, stats.LostDeals)
	assert.Equal(t, 100.0, stats.OpenValue)
	assert.Equal(t, 250.0, stats.WonValue)
}

func Test_FoldDealStats_Empty(t *testing.T) {
	stats := FoldDealStats(nil)

	assert.Equal(t, 0, stats.TotalDeals)
	assert.Equal(t, 0.0, stats.OpenValue)
	assert.Equal(t, 0.0, stats.WonValue)
}
