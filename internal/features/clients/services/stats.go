package clients_services

import (
	clients_repositories "clientbase-backend/internal/features/clients/repositories"
)

// FoldStatusSourceCounts tallies status and source occurrences in one pass.
// Rows with a nil or empty source contribute to the total and to status
// counts but leave sourceCounts untouched, so a key appears in a map only
// when at least one row carries it.
func FoldStatusSourceCounts(
	rows []clients_repositories.StatusSourceRow,
) (statusCounts map[string]int, sourceCounts map[string]int) {
	statusCounts = map[string]int{}
	sourceCounts = map[string]int{}

	for _, row := range rows {
		statusCounts[row.Status]++

		if row.Source != nil && *row.Source != "" {
			sourceCounts[*row.Source]++
		}
	}

	return statusCounts, sourceCounts
}
