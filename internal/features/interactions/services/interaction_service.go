package interactions_services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clientbase-backend/internal/features/revalidation"
	"clientbase-backend/internal/features/workspaces"
	"clientbase-backend/internal/util/dberr"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	interactions_dto "clientbase-backend/internal/features/interactions/dto"
	interactions_models "clientbase-backend/internal/features/interactions/models"
	interactions_repositories "clientbase-backend/internal/features/interactions/repositories"

	"github.com/google/uuid"
)

var ErrInteractionClientNotFound = errors.New("client not found in this workspace")

type InteractionService struct {
	interactionRepository *interactions_repositories.InteractionRepository
	clientRepository      *clients_repositories.ClientRepository
	revalidationService   *revalidation.RevalidationService
}

func (s *InteractionService) GetClientInteractions(
	workspace *workspaces.AccountWorkspace,
	clientID uuid.UUID,
) (*interactions_dto.GetInteractionsResponseDTO, error) {
	if err := s.checkClient(workspace, clientID); err != nil {
		return nil, err
	}

	interactions, err := s.interactionRepository.GetClientInteractions(workspace.AccountID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get interactions: %w", err)
	}

	return &interactions_dto.GetInteractionsResponseDTO{Interactions: interactions}, nil
}

func (s *InteractionService) CreateInteraction(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	clientID uuid.UUID,
	request *interactions_dto.CreateInteractionRequestDTO,
) (*interactions_models.Interaction, error) {
	if !workspace.Can(accounts_enums.PermissionClientsUpdate) {
		return nil, errors.New("insufficient permissions to log interactions")
	}

	if !request.Type.IsValid() {
		return nil, fmt.Errorf("invalid interaction type: %s", request.Type)
	}

	if err := s.checkClient(workspace, clientID); err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC()
	if request.OccurredAt != nil {
		occurredAt = *request.OccurredAt
	}

	interaction := &interactions_models.Interaction{
		ID:         uuid.New(),
		AccountID:  workspace.AccountID,
		ClientID:   clientID,
		DealID:     request.DealID,
		Type:       request.Type,
		Content:    request.Content,
		OccurredAt: occurredAt,
		CreatedBy:  workspace.UserID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.interactionRepository.CreateInteraction(interaction); err != nil {
		return nil, errors.New(dberr.UserMessage("log this interaction", err))
	}

	s.revalidationService.MarkStale(ctx, revalidation.ClientsTag(workspace.AccountID))

	return interaction, nil
}

func (s *InteractionService) checkClient(
	workspace *workspaces.AccountWorkspace,
	clientID uuid.UUID,
) error {
	client, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return fmt.Errorf("failed to resolve client: %w", err)
	}

	if client == nil || client.AccountID != workspace.AccountID {
		return ErrInteractionClientNotFound
	}

	return nil
}
