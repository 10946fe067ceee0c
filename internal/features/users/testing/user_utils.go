package users_testing

import (
	"fmt"

	users_dto "clientbase-backend/internal/features/users/dto"
	users_services "clientbase-backend/internal/features/users/services"

	"github.com/google/uuid"
)

// CreateTestUser registers a fresh user (with its personal account) and
// returns sign-in credentials for API tests.
func CreateTestUser() *users_dto.SignInResponseDTO {
	service := users_services.GetUserService()

	email := fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
	password := "test-password-123"

	err := service.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Name:     "Test User",
		Password: password,
	})
	if err != nil {
		panic("failed to create test user: " + err.Error())
	}

	response, err := service.SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: password,
	})
	if err != nil {
		panic("failed to sign in test user: " + err.Error())
	}

	return response
}
