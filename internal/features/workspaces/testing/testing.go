package workspaces_testing

import (
	"fmt"

	accounts_dto "clientbase-backend/internal/features/accounts/dto"
	accounts_services "clientbase-backend/internal/features/accounts/services"
	users_dto "clientbase-backend/internal/features/users/dto"
	users_middleware "clientbase-backend/internal/features/users/middleware"
	users_services "clientbase-backend/internal/features/users/services"
	"clientbase-backend/internal/features/workspaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ControllerInterface interface {
	RegisterRoutes(router gin.IRoutes)
}

// CreateTestRouter builds a router with the auth middleware applied,
// mirroring the protected group in main.go.
func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	accounts_services.SetupDependencies()

	return router
}

// CreateTestCRMRouter additionally resolves the workspace for each request,
// mirroring the CRM group in main.go.
func CreateTestCRMRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	crm := v1.Group("").
		Use(users_middleware.AuthMiddleware(users_services.GetUserService())).
		Use(workspaces.WorkspaceMiddleware())

	for _, controller := range controllers {
		controller.RegisterRoutes(crm)
	}

	accounts_services.SetupDependencies()

	return router
}

// CreateTestTeamAccount creates a team account owned by the given user,
// going through the service layer the way the API handler does.
func CreateTestTeamAccount(
	name string,
	owner *users_dto.SignInResponseDTO,
) *accounts_dto.AccountSummaryDTO {
	user, err := users_services.GetUserService().GetUserByID(owner.UserID)
	if err != nil {
		panic("failed to load test account owner: " + err.Error())
	}

	slug := fmt.Sprintf("%s-%s", name, uuid.New().String()[:8])

	account, err := accounts_services.GetAccountService().CreateTeamAccount(
		&accounts_dto.CreateTeamAccountRequestDTO{Name: name, Slug: slug},
		user,
	)
	if err != nil {
		panic("failed to create test team account: " + err.Error())
	}

	return &accounts_dto.AccountSummaryDTO{
		ID:   account.ID,
		Name: account.Name,
		Slug: account.Slug,
		Role: "owner",
	}
}
