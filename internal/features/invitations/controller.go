package invitations

import (
	"errors"
	"net/http"
	"strings"

	"clientbase-backend/internal/features/workspaces"

	users_middleware "clientbase-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationController struct {
	invitationService *InvitationService
}

func (c *InvitationController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/invitations/:invitationId/accept", c.AcceptInvitation)

	for _, prefix := range []string{"", "/workspaces/:slug"} {
		router.GET(prefix+"/invitations", c.GetAccountInvitations)
		router.POST(prefix+"/invitations", c.CreateInvitation)
		router.DELETE(prefix+"/invitations/:invitationId", c.RevokeInvitation)
		router.GET(prefix+"/policies/invitations", c.GetInvitationPolicy)
	}
}

// CreateInvitation
// @Summary Invite a member
// @Description Invite a user by email to join the team account
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body CreateInvitationRequest true "Invitation data"
// @Success 201 {object} Invitation
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /invitations [post]
func (c *InvitationController) CreateInvitation(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request CreateInvitationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	invitation, err := c.invitationService.CreateInvitation(workspace, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, invitation)
}

// GetAccountInvitations
// @Summary List invitations
// @Description List the account's invitations with inviter details
// @Tags invitations
// @Produce json
// @Success 200 {object} GetInvitationsResponse
// @Failure 401
// @Failure 403
// @Router /invitations [get]
func (c *InvitationController) GetAccountInvitations(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	response, err := c.invitationService.GetAccountInvitations(workspace)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptInvitation
// @Summary Accept an invitation
// @Description Join the inviting account with the invited role
// @Tags invitations
// @Param invitationId path string true "Invitation ID"
// @Success 204
// @Failure 401
// @Failure 404
// @Failure 410
// @Router /invitations/{invitationId}/accept [post]
func (c *InvitationController) AcceptInvitation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("invitationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation ID"})
		return
	}

	if err := c.invitationService.AcceptInvitation(user, invitationID); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RevokeInvitation
// @Summary Revoke an invitation
// @Description Revoke a pending invitation
// @Tags invitations
// @Param invitationId path string true "Invitation ID"
// @Success 204
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /invitations/{invitationId} [delete]
func (c *InvitationController) RevokeInvitation(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("invitationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation ID"})
		return
	}

	if err := c.invitationService.RevokeInvitation(workspace, invitationID); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetInvitationPolicy
// @Summary Check invitation policy
// @Description Report whether new invitations are currently allowed
// @Tags invitations
// @Produce json
// @Success 200 {object} InvitationPolicyResponse
// @Failure 401
// @Failure 500
// @Router /policies/invitations [get]
func (c *InvitationController) GetInvitationPolicy(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	response, err := c.invitationService.GetInvitationPolicy(workspace)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *InvitationController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotPrimaryOwner), errors.Is(err, ErrPersonalAccountInvite):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvitationNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvitationNotEligible):
		ctx.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "permission"),
		strings.Contains(err.Error(), "not allowed"):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "invalid"):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
