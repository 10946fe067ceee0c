package customfields

import (
	"errors"
	"fmt"
	"time"

	"clientbase-backend/internal/features/workspaces"
	"clientbase-backend/internal/util/dberr"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	deals_repositories "clientbase-backend/internal/features/deals/repositories"

	"github.com/google/uuid"
)

var (
	ErrFieldNotInWorkspace  = errors.New("custom field not found in this workspace")
	ErrEntityNotInWorkspace = errors.New("entity not found in this workspace")
)

type CreateDefinitionRequest struct {
	EntityType EntityType `json:"entityType" binding:"required"`
	Name       string     `json:"name" binding:"required"`
	FieldType  FieldType  `json:"fieldType" binding:"required"`
	Options    *string    `json:"options"`
	SortOrder  int        `json:"sortOrder"`
}

type SetValueRequest struct {
	EntityID uuid.UUID `json:"entityId" binding:"required"`
	Value    string    `json:"value"`
}

type CustomFieldService struct {
	repository       *CustomFieldRepository
	clientRepository *clients_repositories.ClientRepository
	dealRepository   *deals_repositories.DealRepository
}

func (s *CustomFieldService) GetDefinitions(
	workspace *workspaces.AccountWorkspace,
	entityType EntityType,
) ([]FieldDefinition, error) {
	if !entityType.IsValid() {
		return nil, fmt.Errorf("invalid entity type: %s", entityType)
	}

	return s.repository.GetDefinitions(workspace.AccountID, entityType)
}

func (s *CustomFieldService) CreateDefinition(
	workspace *workspaces.AccountWorkspace,
	request *CreateDefinitionRequest,
) (*FieldDefinition, error) {
	if !workspace.Can(accounts_enums.PermissionSettingsManage) {
		return nil, errors.New("insufficient permissions to manage custom fields")
	}

	if !request.EntityType.IsValid() {
		return nil, fmt.Errorf("invalid entity type: %s", request.EntityType)
	}

	if !request.FieldType.IsValid() {
		return nil, fmt.Errorf("invalid field type: %s", request.FieldType)
	}

	definition := &FieldDefinition{
		ID:         uuid.New(),
		AccountID:  workspace.AccountID,
		EntityType: request.EntityType,
		Name:       request.Name,
		FieldType:  request.FieldType,
		Options:    request.Options,
		SortOrder:  request.SortOrder,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repository.CreateDefinition(definition); err != nil {
		return nil, errors.New(dberr.UserMessage("create this custom field", err))
	}

	return definition, nil
}

func (s *CustomFieldService) DeleteDefinition(
	workspace *workspaces.AccountWorkspace,
	definitionID uuid.UUID,
) error {
	if !workspace.Can(accounts_enums.PermissionSettingsManage) {
		return errors.New("insufficient permissions to manage custom fields")
	}

	definition, err := s.getWorkspaceDefinition(workspace, definitionID)
	if err != nil {
		return err
	}

	if err := s.repository.DeleteDefinition(definition.ID); err != nil {
		return errors.New(dberr.UserMessage("delete this custom field", err))
	}

	return nil
}

func (s *CustomFieldService) SetValue(
	workspace *workspaces.AccountWorkspace,
	definitionID uuid.UUID,
	request *SetValueRequest,
) (*FieldValue, error) {
	definition, err := s.getWorkspaceDefinition(workspace, definitionID)
	if err != nil {
		return nil, err
	}

	required := accounts_enums.PermissionClientsUpdate
	if definition.EntityType == EntityTypeDeal {
		required = accounts_enums.PermissionDealsUpdate
	}

	if !workspace.Can(required) {
		return nil, errors.New("insufficient permissions to set custom field values")
	}

	if err := s.checkEntityInWorkspace(
		workspace, definition.EntityType, request.EntityID,
	); err != nil {
		return nil, err
	}

	value := &FieldValue{
		ID:       uuid.New(),
		FieldID:  definition.ID,
		EntityID: request.EntityID,
		Value:    request.Value,
	}

	if err := s.repository.UpsertValue(value); err != nil {
		return nil, errors.New(dberr.UserMessage("set this custom field value", err))
	}

	return value, nil
}

func (s *CustomFieldService) GetValuesForEntity(
	workspace *workspaces.AccountWorkspace,
	entityID uuid.UUID,
) ([]FieldValue, error) {
	if err := s.checkAnyEntityInWorkspace(workspace, entityID); err != nil {
		return nil, err
	}

	return s.repository.GetValuesForEntity(workspace.AccountID, entityID)
}

// checkEntityInWorkspace verifies the target entity exists and is owned by
// the workspace's account. Values must never attach to foreign tenants.
func (s *CustomFieldService) checkEntityInWorkspace(
	workspace *workspaces.AccountWorkspace,
	entityType EntityType,
	entityID uuid.UUID,
) error {
	switch entityType {
	case EntityTypeClient:
		client, err := s.clientRepository.GetClientByID(entityID)
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}

		if client == nil || client.AccountID != workspace.AccountID {
			return ErrEntityNotInWorkspace
		}
	case EntityTypeDeal:
		deal, err := s.dealRepository.GetDealByID(entityID)
		if err != nil {
			return fmt.Errorf("failed to get deal: %w", err)
		}

		if deal == nil || deal.AccountID != workspace.AccountID {
			return ErrEntityNotInWorkspace
		}
	default:
		return fmt.Errorf("invalid entity type: %s", entityType)
	}

	return nil
}

// checkAnyEntityInWorkspace is the entity-type-agnostic variant used by the
// values read path, where the id may name a client or a deal.
func (s *CustomFieldService) checkAnyEntityInWorkspace(
	workspace *workspaces.AccountWorkspace,
	entityID uuid.UUID,
) error {
	client, err := s.clientRepository.GetClientByID(entityID)
	if err != nil {
		return fmt.Errorf("failed to get client: %w", err)
	}

	if client != nil {
		if client.AccountID != workspace.AccountID {
			return ErrEntityNotInWorkspace
		}

		return nil
	}

	deal, err := s.dealRepository.GetDealByID(entityID)
	if err != nil {
		return fmt.Errorf("failed to get deal: %w", err)
	}

	if deal == nil || deal.AccountID != workspace.AccountID {
		return ErrEntityNotInWorkspace
	}

	return nil
}

func (s *CustomFieldService) getWorkspaceDefinition(
	workspace *workspaces.AccountWorkspace,
	definitionID uuid.UUID,
) (*FieldDefinition, error) {
	definition, err := s.repository.GetDefinitionByID(definitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get custom field: %w", err)
	}

	if definition == nil || definition.AccountID != workspace.AccountID {
		return nil, ErrFieldNotInWorkspace
	}

	return definition, nil
}
