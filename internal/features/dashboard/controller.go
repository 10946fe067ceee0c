package dashboard

import (
	"net/http"

	users_middleware "clientbase-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService *DashboardService
}

func (c *DashboardController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/dashboard", c.GetPersonalDashboard)
}

// GetPersonalDashboard
// @Summary Get the personal dashboard
// @Description Aggregate client counts across the personal account and team memberships
// @Tags dashboard
// @Produce json
// @Success 200 {object} PersonalDashboardDTO
// @Failure 401
// @Router /dashboard [get]
func (c *DashboardController) GetPersonalDashboard(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, c.dashboardService.GetPersonalDashboard(user))
}
