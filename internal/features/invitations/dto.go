package invitations

import (
	"time"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"

	"github.com/google/uuid"
)

type CreateInvitationRequest struct {
	Email string                     `json:"email" binding:"required,email"`
	Role  accounts_enums.AccountRole `json:"role" binding:"required"`
}

// InvitationDTO carries inviter details when the join succeeded; the fields
// stay empty when it degraded.
type InvitationDTO struct {
	ID           uuid.UUID                  `json:"id"`
	Email        string                     `json:"email"`
	Role         accounts_enums.AccountRole `json:"role"`
	Status       InvitationStatus           `json:"status"`
	ExpiresAt    time.Time                  `json:"expiresAt"`
	CreatedAt    time.Time                  `json:"createdAt"`
	InviterName  string                     `json:"inviterName"`
	InviterEmail string                     `json:"inviterEmail"`
}

type GetInvitationsResponse struct {
	Invitations []InvitationDTO `json:"invitations"`
}

// InvitationPolicyResponse mirrors the policy evaluator's decision plus
// enough metadata for the client to explain a denial.
type InvitationPolicyResponse struct {
	Allowed  bool           `json:"allowed"`
	Reasons  []string       `json:"reasons"`
	Metadata map[string]int `json:"metadata"`
}
