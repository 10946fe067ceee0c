package deals_enums

// DealStatus is always derived from the deal's current pipeline stage. It is
// stored denormalized so stats queries do not need a stage join.
type DealStatus string

const (
	DealStatusOpen DealStatus = "open"
	DealStatusWon  DealStatus = "won"
	DealStatusLost DealStatus = "lost"
)

func (s DealStatus) IsTerminal() bool {
	return s == DealStatusWon || s == DealStatusLost
}
