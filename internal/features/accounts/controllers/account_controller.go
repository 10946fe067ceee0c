package accounts_controllers

import (
	"net/http"
	"strings"

	"clientbase-backend/internal/config"
	"clientbase-backend/internal/features/audit_logs"

	accounts_dto "clientbase-backend/internal/features/accounts/dto"
	accounts_services "clientbase-backend/internal/features/accounts/services"
	users_middleware "clientbase-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountController struct {
	accountService *accounts_services.AccountService
}

func (c *AccountController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/accounts", c.CreateTeamAccount)
	router.GET("/accounts", c.GetUserAccounts)
	router.GET("/accounts/:accountId/members", c.GetAccountMembers)
	router.POST("/accounts/:accountId/audit-logs", c.GetAccountAuditLogs)
}

// CreateTeamAccount
// @Summary Create a team account
// @Description Create a new team account owned by the current user
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body accounts_dto.CreateTeamAccountRequestDTO true "Team account data"
// @Success 201 {object} accounts_dto.AccountSummaryDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /accounts [post]
func (c *AccountController) CreateTeamAccount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if !config.GetEnv().EnableTeamAccounts {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "team accounts are disabled"})
		return
	}

	var request accounts_dto.CreateTeamAccountRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	account, err := c.accountService.CreateTeamAccount(&request, user)
	if err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, accounts_dto.AccountSummaryDTO{
		ID:         account.ID,
		Name:       account.Name,
		Slug:       account.Slug,
		PictureURL: account.PictureURL,
		Role:       "owner",
	})
}

// GetUserAccounts
// @Summary List team accounts
// @Description List team accounts the current user belongs to
// @Tags accounts
// @Produce json
// @Success 200 {array} accounts_dto.AccountSummaryDTO
// @Failure 401
// @Router /accounts [get]
func (c *AccountController) GetUserAccounts(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accounts, err := c.accountService.GetUserAccounts(user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, accounts)
}

// GetAccountMembers
// @Summary List account members
// @Description List members of an account with their roles
// @Tags accounts
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {object} accounts_dto.GetMembersResponseDTO
// @Failure 401
// @Failure 403
// @Router /accounts/{accountId}/members [get]
func (c *AccountController) GetAccountMembers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(ctx.Param("accountId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	response, err := c.accountService.GetAccountMembers(accountID, user)
	if err != nil {
		if strings.Contains(err.Error(), "insufficient permissions") {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetAccountAuditLogs
// @Summary Get account audit logs
// @Description Get paginated audit logs for an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID"
// @Param request body audit_logs.GetAuditLogsRequest true "Pagination options"
// @Success 200 {object} audit_logs.GetAuditLogsResponse
// @Failure 401
// @Failure 403
// @Router /accounts/{accountId}/audit-logs [post]
func (c *AccountController) GetAccountAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(ctx.Param("accountId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	var request audit_logs.GetAuditLogsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	response, err := c.accountService.GetAccountAuditLogs(accountID, user, &request)
	if err != nil {
		if strings.Contains(err.Error(), "insufficient permissions") {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
