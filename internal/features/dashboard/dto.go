package dashboard

import (
	"github.com/google/uuid"
)

// TeamAccountSummary is one account row on the personal dashboard with its
// client count grouped in.
type TeamAccountSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        *string   `json:"slug"`
	ClientCount int       `json:"clientCount"`
}

// PersonalDashboardDTO aggregates across every account the user can see:
// the personal account plus all team memberships.
type PersonalDashboardDTO struct {
	TotalClients      int                  `json:"totalClients"`
	TotalTeamAccounts int                  `json:"totalTeamAccounts"`
	TeamAccounts      []TeamAccountSummary `json:"teamAccounts"`
	StatusCounts      map[string]int       `json:"statusCounts"`
}
