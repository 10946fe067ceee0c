package revalidation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RevalidationController struct {
	revalidationService *RevalidationService
}

func (c *RevalidationController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/revalidation/consume", c.ConsumeStaleTags)
}

// ConsumeStaleTags
// @Summary Consume stale cache tags
// @Description Return tags invalidated since the last call and clear them
// @Tags revalidation
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 401
// @Router /revalidation/consume [post]
func (c *RevalidationController) ConsumeStaleTags(ctx *gin.Context) {
	tags := c.revalidationService.ConsumeStale(ctx.Request.Context())

	ctx.JSON(http.StatusOK, gin.H{"tags": tags})
}
