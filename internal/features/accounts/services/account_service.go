package accounts_services

import (
	"errors"
	"fmt"
	"time"

	"clientbase-backend/internal/features/audit_logs"
	"clientbase-backend/internal/features/policies"

	accounts_dto "clientbase-backend/internal/features/accounts/dto"
	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	accounts_models "clientbase-backend/internal/features/accounts/models"
	accounts_repositories "clientbase-backend/internal/features/accounts/repositories"
	users_models "clientbase-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type AccountService struct {
	accountRepository    *accounts_repositories.AccountRepository
	membershipRepository *accounts_repositories.MembershipRepository
	auditLogService      *audit_logs.AuditLogService
	creationEvaluator    *policies.Evaluator
}

// CreatePersonalAccount provisions the per-user personal account. The
// account id equals the user id; that identity is what makes the implicit
// permission grant safe.
func (s *AccountService) CreatePersonalAccount(userID uuid.UUID, name string) error {
	account := &accounts_models.Account{
		ID:                 userID,
		Name:               name,
		Slug:               nil,
		IsPersonalAccount:  true,
		PrimaryOwnerUserID: userID,
		CreatedAt:          time.Now().UTC(),
	}

	return s.accountRepository.CreateAccount(account)
}

func (s *AccountService) CreateTeamAccount(
	request *accounts_dto.CreateTeamAccountRequestDTO,
	creator *users_models.User,
) (*accounts_models.Account, error) {
	decision := s.creationEvaluator.Evaluate(policies.Context{
		Timestamp:   time.Now().UTC(),
		UserID:      creator.ID,
		AccountName: request.Name,
	}, policies.StageSubmission)

	if !decision.Allowed {
		return nil, errors.New(decision.Reasons[0])
	}

	existing, err := s.accountRepository.GetAccountBySlug(request.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug availability: %w", err)
	}

	if existing != nil {
		return nil, errors.New("an account with this slug already exists")
	}

	slug := request.Slug
	account := &accounts_models.Account{
		ID:                 uuid.New(),
		Name:               request.Name,
		Slug:               &slug,
		IsPersonalAccount:  false,
		PrimaryOwnerUserID: creator.ID,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.accountRepository.CreateAccount(account); err != nil {
		return nil, fmt.Errorf("failed to create team account: %w", err)
	}

	membership := &accounts_models.Membership{
		UserID:    creator.ID,
		AccountID: account.ID,
		Role:      accounts_enums.AccountRoleOwner,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Team account created: %s", account.Name),
		&creator.ID,
		&account.ID,
	)

	return account, nil
}

func (s *AccountService) GetUserAccounts(
	userID uuid.UUID,
) ([]accounts_dto.AccountSummaryDTO, error) {
	return s.membershipRepository.GetUserAccounts(userID)
}

func (s *AccountService) GetAccountBySlug(slug string) (*accounts_models.Account, error) {
	return s.accountRepository.GetAccountBySlug(slug)
}

// GetAccountMembers lists members for callers that belong to the account.
// The add-member gate is primary-owner equality, not a permission string.
func (s *AccountService) GetAccountMembers(
	accountID uuid.UUID,
	user *users_models.User,
) (*accounts_dto.GetMembersResponseDTO, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if account.PrimaryOwnerUserID != user.ID {
		membership, err := s.membershipRepository.GetMembership(user.ID, accountID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}

		if membership == nil {
			return nil, errors.New("insufficient permissions to view account members")
		}
	}

	members, err := s.membershipRepository.GetAccountMembers(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account members: %w", err)
	}

	return &accounts_dto.GetMembersResponseDTO{
		Members:      members,
		CanAddMember: account.PrimaryOwnerUserID == user.ID,
	}, nil
}

func (s *AccountService) GetAccountAuditLogs(
	accountID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	membership, err := s.membershipRepository.GetMembership(user.ID, accountID)
	if err != nil {
		return nil, err
	}

	if membership == nil && accountID != user.ID {
		return nil, errors.New("insufficient permissions to view account audit logs")
	}

	return s.auditLogService.GetAccountAuditLogs(accountID, request)
}
