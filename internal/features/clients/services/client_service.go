package clients_services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clientbase-backend/internal/features/audit_logs"
	"clientbase-backend/internal/features/revalidation"
	"clientbase-backend/internal/features/workspaces"
	"clientbase-backend/internal/util/dberr"
	"clientbase-backend/internal/util/logger"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	clients_dto "clientbase-backend/internal/features/clients/dto"
	clients_models "clientbase-backend/internal/features/clients/models"
	clients_repositories "clientbase-backend/internal/features/clients/repositories"

	"github.com/google/uuid"
)

// ErrClientNotInWorkspace means the client exists but under a different
// tenant. Handlers treat it like a navigation miss, not a data error.
var ErrClientNotInWorkspace = errors.New("client not found in this workspace")

const recentClientsLimit = 5

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

type ClientService struct {
	clientRepository    *clients_repositories.ClientRepository
	auditLogService     *audit_logs.AuditLogService
	revalidationService *revalidation.RevalidationService
}

func (s *ClientService) GetClients(
	workspace *workspaces.AccountWorkspace,
	request *clients_dto.GetClientsRequestDTO,
) (*clients_dto.GetClientsResponseDTO, error) {
	if request.Page < 1 {
		request.Page = 1
	}

	if request.Limit < 1 {
		request.Limit = defaultPageSize
	}

	if request.Limit > maxPageSize {
		request.Limit = maxPageSize
	}

	clients, total, err := s.clientRepository.GetClients(workspace.AccountID, request)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}

	return &clients_dto.GetClientsResponseDTO{
		Clients: clients,
		Total:   total,
		Page:    request.Page,
		Limit:   request.Limit,
	}, nil
}

// GetClient re-checks tenancy even though the workspace was already
// resolved. An id pasted from another workspace must not leak data.
func (s *ClientService) GetClient(
	workspace *workspaces.AccountWorkspace,
	clientID uuid.UUID,
) (*clients_models.Client, error) {
	client, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if client == nil || client.AccountID != workspace.AccountID {
		return nil, ErrClientNotInWorkspace
	}

	return client, nil
}

func (s *ClientService) CreateClient(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	request *clients_dto.CreateClientRequestDTO,
) (*clients_models.Client, error) {
	if !workspace.Can(accounts_enums.PermissionClientsCreate) {
		return nil, errors.New("insufficient permissions to create clients")
	}

	status := request.Status
	if status == "" {
		status = "lead"
	}

	if !status.IsValid() {
		return nil, fmt.Errorf("invalid client status: %s", status)
	}

	client := &clients_models.Client{
		ID:        uuid.New(),
		AccountID: workspace.AccountID,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Company:   request.Company,
		Status:    status,
		Source:    request.Source,
		Notes:     request.Notes,
		CreatedBy: workspace.UserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.clientRepository.CreateClient(client); err != nil {
		return nil, errors.New(dberr.UserMessage("create this client", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Client created: %s", client.Name),
		&workspace.UserID,
		&workspace.AccountID,
	)

	s.revalidationService.MarkStale(ctx,
		revalidation.ClientsTag(workspace.AccountID),
		revalidation.DashboardTag(workspace.AccountID),
	)

	return client, nil
}

func (s *ClientService) UpdateClient(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	clientID uuid.UUID,
	request *clients_dto.UpdateClientRequestDTO,
) (*clients_models.Client, error) {
	if !workspace.Can(accounts_enums.PermissionClientsUpdate) {
		return nil, errors.New("insufficient permissions to update clients")
	}

	client, err := s.GetClient(workspace, clientID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		client.Name = *request.Name
	}

	if request.Email != nil {
		client.Email = request.Email
	}

	if request.Phone != nil {
		client.Phone = request.Phone
	}

	if request.Company != nil {
		client.Company = request.Company
	}

	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, fmt.Errorf("invalid client status: %s", *request.Status)
		}

		client.Status = *request.Status
	}

	if request.Source != nil {
		client.Source = request.Source
	}

	if request.Notes != nil {
		client.Notes = request.Notes
	}

	if err := s.clientRepository.UpdateClient(client); err != nil {
		return nil, errors.New(dberr.UserMessage("update this client", err))
	}

	s.revalidationService.MarkStale(ctx,
		revalidation.ClientsTag(workspace.AccountID),
		revalidation.DashboardTag(workspace.AccountID),
	)

	return client, nil
}

func (s *ClientService) DeleteClient(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	clientID uuid.UUID,
) error {
	if !workspace.Can(accounts_enums.PermissionClientsDelete) {
		return errors.New("insufficient permissions to delete clients")
	}

	client, err := s.GetClient(workspace, clientID)
	if err != nil {
		return err
	}

	if err := s.clientRepository.DeleteClient(client.ID); err != nil {
		return errors.New(dberr.UserMessage("delete this client", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Client deleted: %s", client.Name),
		&workspace.UserID,
		&workspace.AccountID,
	)

	s.revalidationService.MarkStale(ctx,
		revalidation.ClientsTag(workspace.AccountID),
		revalidation.DashboardTag(workspace.AccountID),
	)

	return nil
}

// GetClientStats never fails the page. A broken aggregate degrades to an
// empty one and the dashboard renders zeros.
func (s *ClientService) GetClientStats(
	workspace *workspaces.AccountWorkspace,
) *clients_dto.ClientStatsDTO {
	rows, err := s.clientRepository.GetStatusSourceRows(workspace.AccountID)
	if err != nil {
		logger.GetLogger().Error("failed to load client stats rows", "accountID", workspace.AccountID, "error", err)
		return emptyClientStats()
	}

	statusCounts, sourceCounts := FoldStatusSourceCounts(rows)

	recent, err := s.clientRepository.GetRecentClients(workspace.AccountID, recentClientsLimit)
	if err != nil {
		logger.GetLogger().Error("failed to load recent clients", "accountID", workspace.AccountID, "error", err)
		recent = []clients_models.Client{}
	}

	return &clients_dto.ClientStatsDTO{
		TotalClients:  len(rows),
		StatusCounts:  statusCounts,
		SourceCounts:  sourceCounts,
		RecentClients: recent,
	}
}

func emptyClientStats() *clients_dto.ClientStatsDTO {
	return &clients_dto.ClientStatsDTO{
		StatusCounts:  map[string]int{},
		SourceCounts:  map[string]int{},
		RecentClients: []clients_models.Client{},
	}
}
