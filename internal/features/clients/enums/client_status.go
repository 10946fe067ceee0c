package clients_enums

type ClientStatus string

const (
	ClientStatusLead     ClientStatus = "lead"
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusCustomer ClientStatus = "customer"
)

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusLead, ClientStatusActive, ClientStatusInactive, ClientStatusCustomer:
		return true
	}

	return false
}
