package deals_services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clientbase-backend/internal/features/audit_logs"
	"clientbase-backend/internal/features/revalidation"
	"clientbase-backend/internal/features/workspaces"
	"clientbase-backend/internal/util/dberr"
	"clientbase-backend/internal/util/logger"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	deals_dto "clientbase-backend/internal/features/deals/dto"
	deals_models "clientbase-backend/internal/features/deals/models"
	deals_repositories "clientbase-backend/internal/features/deals/repositories"

	"github.com/google/uuid"
)

var (
	// ErrDealNotInWorkspace mirrors the client-side tenant miss: existing
	// ids from another tenant look exactly like missing ids.
	ErrDealNotInWorkspace = errors.New("deal not found in this workspace")

	ErrNoPipeline = errors.New("no sales pipeline configured for this workspace")
)

type DealService struct {
	dealRepository      *deals_repositories.DealRepository
	pipelineRepository  *deals_repositories.PipelineRepository
	clientRepository    *clients_repositories.ClientRepository
	auditLogService     *audit_logs.AuditLogService
	revalidationService *revalidation.RevalidationService
}

func (s *DealService) GetPipelines(
	workspace *workspaces.AccountWorkspace,
) ([]deals_models.SalesPipeline, error) {
	return s.pipelineRepository.GetPipelines(workspace.AccountID)
}

// GetDealsBoard loads the pipeline board. Deals and client names are fetched
// concurrently; a failed client lookup degrades to nameless cards while a
// failed deal lookup fails the board.
func (s *DealService) GetDealsBoard(
	workspace *workspaces.AccountWorkspace,
	pipelineID *uuid.UUID,
) (*deals_dto.DealsBoardResponseDTO, error) {
	pipeline, err := s.resolvePipeline(workspace, pipelineID)
	if err != nil {
		return nil, err
	}

	if pipeline == nil {
		return nil, ErrNoPipeline
	}

	var (
		wg sync.WaitGroup

		deals    []deals_models.Deal
		dealsErr error

		clientNames map[uuid.UUID]string
		clientsErr  error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		deals, dealsErr = s.dealRepository.GetDealsByPipeline(workspace.AccountID, pipeline.ID)
	}()

	go func() {
		defer wg.Done()
		clientNames, clientsErr = s.loadClientNames(workspace.AccountID)
	}()

	wg.Wait()

	if dealsErr != nil {
		return nil, fmt.Errorf("failed to load deals: %w", dealsErr)
	}

	if clientsErr != nil {
		logger.GetLogger().Error("failed to load client names for board", "accountID", workspace.AccountID, "error", clientsErr)
		clientNames = map[uuid.UUID]string{}
	}

	return &deals_dto.DealsBoardResponseDTO{
		Pipeline:     pipeline,
		DealsByStage: GroupDealsByStage(pipeline, deals, clientNames),
	}, nil
}

func (s *DealService) CreateDeal(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	request *deals_dto.CreateDealRequestDTO,
) (*deals_models.Deal, error) {
	if !workspace.Can(accounts_enums.PermissionDealsCreate) {
		return nil, errors.New("insufficient permissions to create deals")
	}

	// The deal's tenant comes from its client, never from the request.
	client, err := s.clientRepository.GetClientByID(request.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	if client == nil || client.AccountID != workspace.AccountID {
		return nil, ErrDealNotInWorkspace
	}

	pipeline, err := s.resolvePipeline(workspace, request.PipelineID)
	if err != nil {
		return nil, err
	}

	if pipeline == nil || len(pipeline.Stages) == 0 {
		return nil, ErrNoPipeline
	}

	stage := &pipeline.Stages[0]
	if request.StageID != nil {
		stage = findStage(pipeline, *request.StageID)
		if stage == nil {
			return nil, errors.New("stage does not belong to the pipeline")
		}
	}

	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}

	deal := &deals_models.Deal{
		ID:                uuid.New(),
		AccountID:         client.AccountID,
		ClientID:          client.ID,
		PipelineID:        pipeline.ID,
		Title:             request.Title,
		Amount:            request.Amount,
		Currency:          currency,
		ExpectedCloseDate: request.ExpectedCloseDate,
		CreatedBy:         workspace.UserID,
		CreatedAt:         time.Now().UTC(),
	}

	ApplyStageTransition(deal, stage, time.Now().UTC())

	if err := s.dealRepository.CreateDeal(deal); err != nil {
		return nil, errors.New(dberr.UserMessage("create this deal", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Deal created: %s", deal.Title),
		&workspace.UserID,
		&workspace.AccountID,
	)

	s.markDealsStale(ctx, workspace.AccountID)

	return deal, nil
}

func (s *DealService) MoveDeal(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	dealID uuid.UUID,
	stageID uuid.UUID,
) (*deals_models.Deal, error) {
	if !workspace.Can(accounts_enums.PermissionDealsUpdate) {
		return nil, errors.New("insufficient permissions to update deals")
	}

	deal, err := s.getWorkspaceDeal(workspace, dealID)
	if err != nil {
		return nil, err
	}

	stage, err := s.pipelineRepository.GetStageByID(stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve stage: %w", err)
	}

	if stage == nil || stage.PipelineID != deal.PipelineID {
		return nil, errors.New("stage does not belong to the deal's pipeline")
	}

	ApplyStageTransition(deal, stage, time.Now().UTC())

	if err := s.dealRepository.UpdateDeal(deal); err != nil {
		return nil, errors.New(dberr.UserMessage("move this deal", err))
	}

	s.markDealsStale(ctx, workspace.AccountID)

	return deal, nil
}

func (s *DealService) UpdateDeal(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	dealID uuid.UUID,
	request *deals_dto.UpdateDealRequestDTO,
) (*deals_models.Deal, error) {
	if !workspace.Can(accounts_enums.PermissionDealsUpdate) {
		return nil, errors.New("insufficient permissions to update deals")
	}

	deal, err := s.getWorkspaceDeal(workspace, dealID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		deal.Title = *request.Title
	}

	if request.Amount != nil {
		deal.Amount = request.Amount
	}

	if request.Currency != nil {
		deal.Currency = *request.Currency
	}

	if request.ExpectedCloseDate != nil {
		deal.ExpectedCloseDate = request.ExpectedCloseDate
	}

	if err := s.dealRepository.UpdateDeal(deal); err != nil {
		return nil, errors.New(dberr.UserMessage("update this deal", err))
	}

	s.markDealsStale(ctx, workspace.AccountID)

	return deal, nil
}

func (s *DealService) DeleteDeal(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	dealID uuid.UUID,
) error {
	if !workspace.Can(accounts_enums.PermissionDealsDelete) {
		return errors.New("insufficient permissions to delete deals")
	}

	deal, err := s.getWorkspaceDeal(workspace, dealID)
	if err != nil {
		return err
	}

	if err := s.dealRepository.DeleteDeal(deal.ID); err != nil {
		return errors.New(dberr.UserMessage("delete this deal", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Deal deleted: %s", deal.Title),
		&workspace.UserID,
		&workspace.AccountID,
	)

	s.markDealsStale(ctx, workspace.AccountID)

	return nil
}

// GetDealStats degrades to zeros like the client stats do.
func (s *DealService) GetDealStats(
	workspace *workspaces.AccountWorkspace,
) deals_dto.DealStatsDTO {
	deals, err := s.dealRepository.GetDealsByAccount(workspace.AccountID)
	if err != nil {
		logger.GetLogger().Error("failed to load deals for stats", "accountID", workspace.AccountID, "error", err)
		return deals_dto.DealStatsDTO{}
	}

	return FoldDealStats(deals)
}

func (s *DealService) getWorkspaceDeal(
	workspace *workspaces.AccountWorkspace,
	dealID uuid.UUID,
) (*deals_models.Deal, error) {
	deal, err := s.dealRepository.GetDealByID(dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	if deal == nil || deal.AccountID != workspace.AccountID {
		return nil, ErrDealNotInWorkspace
	}

	return deal, nil
}

func (s *DealService) resolvePipeline(
	workspace *workspaces.AccountWorkspace,
	pipelineID *uuid.UUID,
) (*deals_models.SalesPipeline, error) {
	if pipelineID != nil {
		pipeline, err := s.pipelineRepository.GetPipelineByID(*pipelineID)
		if err != nil {
			return nil, fmt.Errorf("failed to get pipeline: %w", err)
		}

		if pipeline == nil || pipeline.AccountID != workspace.AccountID {
			return nil, ErrNoPipeline
		}

		return pipeline, nil
	}

	pipeline, err := s.pipelineRepository.GetDefaultPipeline(workspace.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get default pipeline: %w", err)
	}

	return pipeline, nil
}

func (s *DealService) loadClientNames(accountID uuid.UUID) (map[uuid.UUID]string, error) {
	clients, err := s.clientRepository.GetClientsByAccountIDs([]uuid.UUID{accountID})
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}

	return names, nil
}

func (s *DealService) markDealsStale(ctx context.Context, accountID uuid.UUID) {
	s.revalidationService.MarkStale(ctx,
		revalidation.DealsTag(accountID),
		revalidation.DashboardTag(accountID),
	)
}

func findStage(pipeline *deals_models.SalesPipeline, stageID uuid.UUID) *deals_models.PipelineStage {
	for i := range pipeline.Stages {
		if pipeline.Stages[i].ID == stageID {
			return &pipeline.Stages[i]
		}
	}

	return nil
}
