package workspaces

import (
	"errors"
	"net/http"

	users_middleware "clientbase-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

const accountWorkspaceContextKey = "accountWorkspace"

// WorkspaceMiddleware resolves the tenant for CRM routes. Routes without a
// :slug param run against the caller's personal workspace. An unresolvable
// workspace redirects to the account list instead of returning an error.
func WorkspaceMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := users_middleware.GetUserFromContext(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		workspace, err := GetWorkspaceService().ResolveWorkspace(ctx, user, ctx.Param("slug"))
		if err != nil {
			if errors.Is(err, ErrWorkspaceNotFound) {
				ctx.Redirect(http.StatusSeeOther, accountsListPath)
				ctx.Abort()
				return
			}

			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ctx.Set(accountWorkspaceContextKey, workspace)
		ctx.Next()
	}
}

func GetWorkspaceFromContext(ctx *gin.Context) (*AccountWorkspace, bool) {
	value, ok := ctx.Get(accountWorkspaceContextKey)
	if !ok {
		return nil, false
	}

	workspace, ok := value.(*AccountWorkspace)

	return workspace, ok
}
