package invitations

import (
	"errors"
	"fmt"
	"time"

	"clientbase-backend/internal/config"
	"clientbase-backend/internal/features/audit_logs"
	"clientbase-backend/internal/features/policies"
	"clientbase-backend/internal/features/workspaces"
	"clientbase-backend/internal/util/dberr"
	"clientbase-backend/internal/util/logger"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	accounts_models "clientbase-backend/internal/features/accounts/models"
	accounts_repositories "clientbase-backend/internal/features/accounts/repositories"
	users_models "clientbase-backend/internal/features/users/models"
	users_repositories "clientbase-backend/internal/features/users/repositories"

	"github.com/google/uuid"
)

var (
	// ErrNotPrimaryOwner: inviting members is gated by primary-owner id
	// equality, not by role or permission strings.
	ErrNotPrimaryOwner = errors.New("only the primary owner can manage invitations")

	ErrPersonalAccountInvite = errors.New("personal accounts cannot invite members")
	ErrInvitationNotFound    = errors.New("invitation not found")
	ErrInvitationNotEligible = errors.New("invitation is expired or not addressed to you")
)

type InvitationService struct {
	invitationRepository *InvitationRepository
	membershipRepository *accounts_repositories.MembershipRepository
	userRepository       *users_repositories.UserRepository
	auditLogService      *audit_logs.AuditLogService
	invitationsEvaluator *policies.Evaluator
}

func (s *InvitationService) CreateInvitation(
	workspace *workspaces.AccountWorkspace,
	request *CreateInvitationRequest,
) (*Invitation, error) {
	if workspace.IsPersonalAccount {
		return nil, ErrPersonalAccountInvite
	}

	if !workspace.IsPrimaryOwner() {
		return nil, ErrNotPrimaryOwner
	}

	if !request.Role.IsValid() || request.Role == accounts_enums.AccountRoleOwner {
		return nil, fmt.Errorf("invalid invitation role: %s", request.Role)
	}

	pending, err := s.invitationRepository.CountPendingInvitations(workspace.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invitations: %w", err)
	}

	decision := s.invitationsEvaluator.Evaluate(policies.Context{
		Timestamp:          time.Now().UTC(),
		UserID:             workspace.UserID,
		AccountName:        workspace.AccountName,
		PendingInvitations: int(pending),
	}, policies.StageSubmission)

	if !decision.Allowed {
		return nil, fmt.Errorf("invitation not allowed: %s", decision.Reasons[0])
	}

	invitation := &Invitation{
		ID:        uuid.New(),
		AccountID: workspace.AccountID,
		Email:     request.Email,
		Role:      request.Role,
		InvitedBy: workspace.UserID,
		Status:    InvitationStatusPending,
		ExpiresAt: time.Now().UTC().AddDate(0, 0, config.GetEnv().InvitationExpiryDays),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.invitationRepository.CreateInvitation(invitation); err != nil {
		return nil, errors.New(dberr.UserMessage("create this invitation", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invitation sent to %s", invitation.Email),
		&workspace.UserID,
		&workspace.AccountID,
	)

	return invitation, nil
}

// GetAccountInvitations lists invitations with inviter details. The inviter
// join is degradable: a failed user lookup leaves the name fields empty
// instead of failing the list.
func (s *InvitationService) GetAccountInvitations(
	workspace *workspaces.AccountWorkspace,
) (*GetInvitationsResponse, error) {
	if !workspace.IsPrimaryOwner() && !workspace.Can(accounts_enums.PermissionInvitesManage) {
		return nil, errors.New("insufficient permissions to view invitations")
	}

	invitations, err := s.invitationRepository.GetAccountInvitations(workspace.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations: %w", err)
	}

	inviters := map[uuid.UUID]*users_models.User{}
	dtos := make([]InvitationDTO, 0, len(invitations))

	for _, invitation := range invitations {
		inviter, ok := inviters[invitation.InvitedBy]
		if !ok {
			loaded, err := s.userRepository.GetUserByID(invitation.InvitedBy)
			if err != nil {
				logger.GetLogger().Error("failed to load inviter", "userID", invitation.InvitedBy, "error", err)
			}

			inviter = loaded
			inviters[invitation.InvitedBy] = inviter
		}

		dto := InvitationDTO{
			ID:        invitation.ID,
			Email:     invitation.Email,
			Role:      invitation.Role,
			Status:    invitation.Status,
			ExpiresAt: invitation.ExpiresAt,
			CreatedAt: invitation.CreatedAt,
		}

		if inviter != nil {
			dto.InviterName = inviter.Name
			dto.InviterEmail = inviter.Email
		}

		dtos = append(dtos, dto)
	}

	return &GetInvitationsResponse{Invitations: dtos}, nil
}

func (s *InvitationService) AcceptInvitation(
	user *users_models.User,
	invitationID uuid.UUID,
) error {
	invitation, err := s.invitationRepository.GetInvitationByID(invitationID)
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation == nil {
		return ErrInvitationNotFound
	}

	if invitation.Status != InvitationStatusPending ||
		invitation.ExpiresAt.Before(time.Now().UTC()) ||
		invitation.Email != user.Email {
		return ErrInvitationNotEligible
	}

	membership := &accounts_models.Membership{
		UserID:    user.ID,
		AccountID: invitation.AccountID,
		Role:      invitation.Role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return errors.New(dberr.UserMessage("accept this invitation", err))
	}

	invitation.Status = InvitationStatusAccepted
	if err := s.invitationRepository.UpdateInvitation(invitation); err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invitation accepted by %s", user.Email),
		&user.ID,
		&invitation.AccountID,
	)

	return nil
}

func (s *InvitationService) RevokeInvitation(
	workspace *workspaces.AccountWorkspace,
	invitationID uuid.UUID,
) error {
	if !workspace.IsPrimaryOwner() {
		return ErrNotPrimaryOwner
	}

	invitation, err := s.invitationRepository.GetInvitationByID(invitationID)
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation == nil || invitation.AccountID != workspace.AccountID {
		return ErrInvitationNotFound
	}

	invitation.Status = InvitationStatusRevoked
	if err := s.invitationRepository.UpdateInvitation(invitation); err != nil {
		return errors.New(dberr.UserMessage("revoke this invitation", err))
	}

	return nil
}

// GetInvitationPolicy evaluates the invitation rules without creating
// anything, so the client can disable the invite form up front.
func (s *InvitationService) GetInvitationPolicy(
	workspace *workspaces.AccountWorkspace,
) (*InvitationPolicyResponse, error) {
	pending, err := s.invitationRepository.CountPendingInvitations(workspace.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invitations: %w", err)
	}

	decision := s.invitationsEvaluator.Evaluate(policies.Context{
		Timestamp:          time.Now().UTC(),
		UserID:             workspace.UserID,
		AccountName:        workspace.AccountName,
		PendingInvitations: int(pending),
	}, policies.StageSubmission)

	return &InvitationPolicyResponse{
		Allowed: decision.Allowed,
		Reasons: decision.Reasons,
		Metadata: map[string]int{
			"pendingInvitations": int(pending),
			"rulesEvaluated":     s.invitationsEvaluator.RulesForStage(policies.StageSubmission),
		},
	}, nil
}

// SweepExpiredInvitations backs the cron job.
func (s *InvitationService) SweepExpiredInvitations() {
	removed, err := s.invitationRepository.DeleteExpiredInvitations(time.Now().UTC())
	if err != nil {
		logger.GetLogger().Error("failed to sweep expired invitations", "error", err)
		return
	}

	if removed > 0 {
		logger.GetLogger().Info("swept expired invitations", "count", removed)
	}
}
