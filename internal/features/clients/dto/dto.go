package clients_dto

import (
	clients_enums "clientbase-backend/internal/features/clients/enums"
	clients_models "clientbase-backend/internal/features/clients/models"
)

type CreateClientRequestDTO struct {
	Name    string                     `json:"name" binding:"required"`
	Email   *string                    `json:"email"`
	Phone   *string                    `json:"phone"`
	Company *string                    `json:"company"`
	Status  clients_enums.ClientStatus `json:"status"`
	Source  *string                    `json:"source"`
	Notes   *string                    `json:"notes"`
}

type UpdateClientRequestDTO struct {
	Name    *string                     `json:"name"`
	Email   *string                     `json:"email"`
	Phone   *string                     `json:"phone"`
	Company *string                     `json:"company"`
	Status  *clients_enums.ClientStatus `json:"status"`
	Source  *string                     `json:"source"`
	Notes   *string                     `json:"notes"`
}

type GetClientsRequestDTO struct {
	Status *clients_enums.ClientStatus `form:"status"`
	Search string                      `form:"search"`
	Page   int                         `form:"page"`
	Limit  int                         `form:"limit"`
}

type GetClientsResponseDTO struct {
	Clients []clients_models.Client `json:"clients"`
	Total   int64                   `json:"total"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
}

// ClientStatsDTO is the dashboard aggregate for one workspace. Counts only
// carry keys that actually occur in the data; absent keys mean zero.
type ClientStatsDTO struct {
	TotalClients  int                     `json:"totalClients"`
	StatusCounts  map[string]int          `json:"statusCounts"`
	SourceCounts  map[string]int          `json:"sourceCounts"`
	RecentClients []clients_models.Client `json:"recentClients"`
}
