package users_interfaces

import "github.com/google/uuid"

// PersonalAccountCreator provisions the per-user personal account at sign-up.
// Implemented by the accounts feature; injected to avoid an import cycle.
type PersonalAccountCreator interface {
	CreatePersonalAccount(userID uuid.UUID, name string) error
}
