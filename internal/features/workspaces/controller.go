package workspaces

import (
	"errors"
	"net/http"

	users_middleware "clientbase-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

// accountsListPath is where the client is sent when it asks for a workspace
// it cannot see. Redirecting instead of erroring keeps slug probing blind.
const accountsListPath = "/accounts"

type WorkspaceController struct {
	workspaceService *WorkspaceService
}

func (c *WorkspaceController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/workspace", c.GetUserWorkspace)
	router.GET("/workspaces/:slug", c.GetTeamWorkspace)
}

// GetUserWorkspace
// @Summary Get the current user's workspace
// @Description Get the signed-in user's identity, personal workspace and team accounts
// @Tags workspaces
// @Produce json
// @Success 200 {object} UserWorkspace
// @Failure 401
// @Failure 500
// @Router /workspace [get]
func (c *WorkspaceController) GetUserWorkspace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workspace, err := c.workspaceService.LoadUserWorkspace(ctx, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// GetTeamWorkspace
// @Summary Get a team workspace
// @Description Resolve a team workspace by slug with the caller's role and permissions
// @Tags workspaces
// @Produce json
// @Param slug path string true "Account slug"
// @Success 200 {object} AccountWorkspace
// @Failure 303
// @Failure 401
// @Failure 500
// @Router /workspaces/{slug} [get]
func (c *WorkspaceController) GetTeamWorkspace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workspace, err := c.workspaceService.LoadTeamWorkspace(user, ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrWorkspaceNotFound) {
			ctx.Redirect(http.StatusSeeOther, accountsListPath)
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}
