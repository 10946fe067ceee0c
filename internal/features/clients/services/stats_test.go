package clients_services

import (
	"testing"

	clients_repositories "clientbase-backend/internal/features/clients/repositories"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func Test_FoldStatusSourceCounts_TalliesPerKey(t *testing.T) {
	rows := []clients_repositories.StatusSourceRow{
		{Status: "lead", Source: strPtr("referral")},
		{Status: "lead", Source: strPtr("website")},
		{Status: "active", Source: strPtr("referral")},
		{Status: "customer", Source: nil},
	}

	statusCounts, sourceCounts := FoldStatusSourceCounts(rows)

	assert.Equal(t, map[string]int{"lead": 2, "active": 1, "customer": 1}, statusCounts)
	assert.Equal(t, map[string]int{"referral": 2, "website": 1}, sourceCounts)

	total := 0
	for _, count := range statusCounts {
		total += count
	}
	assert.Equal(t, len(rows), total)
}

func Test_FoldStatusSourceCounts_SkipsNilAndEmptySources(t *testing.T) {
	rows := []clients_repositories.StatusSourceRow{
		{Status: "lead", Source: nil},
		{Status: "lead", Source: strPtr("")},
	}

	statusCounts, sourceCounts := FoldStatusSourceCounts(rows)

	assert.Equal(t, 2, statusCounts["lead"])
	assert.Empty(t, sourceCounts)
}

func Test_FoldStatusSourceCounts_UnseenKeysAreAbsent(t *testing.T) {
	rows := []clients_repositories.StatusSourceRow{
		{Status: "active", Source: strPtr("referral")},
	}

	statusCounts, sourceCounts := FoldStatusSourceCounts(rows)

	_, hasLead := statusCounts["lead"]
	_, hasInactive := statusCounts["inactive"]
	assert.False(t, hasLead)
	assert.False(t, hasInactive)
	assert.Len(t, sourceCounts, 1)
}

func Test_FoldStatusSourceCounts_EmptyInput(t *testing.T) {
	statusCounts, sourceCounts := FoldStatusSourceCounts(nil)

	assert.NotNil(t, statusCounts)
	assert.NotNil(t, sourceCounts)
	assert.Empty(t, statusCounts)
	assert.Empty(t, sourceCounts)
}
