package system

import (
	"net/http"
	"sync"

	"clientbase-backend/internal/util/logger"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type ResourceUsageDTO struct {
	TotalBytes  uint64  `json:"totalBytes"`
	UsedBytes   uint64  `json:"usedBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

type HealthcheckResponseDTO struct {
	Status string            `json:"status"`
	Memory *ResourceUsageDTO `json:"memory,omitempty"`
	Disk   *ResourceUsageDTO `json:"disk,omitempty"`
}

type HealthcheckController struct{}

var (
	healthcheckController     *HealthcheckController
	healthcheckControllerOnce sync.Once
)

func GetHealthcheckController() *HealthcheckController {
	healthcheckControllerOnce.Do(func() {
		healthcheckController = &HealthcheckController{}
	})

	return healthcheckController
}

func (c *HealthcheckController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/healthcheck", c.Healthcheck)
}

// Healthcheck
// @Summary Liveness probe
// @Description Report process liveness with a memory and disk snapshot
// @Tags system
// @Produce json
// @Success 200 {object} HealthcheckResponseDTO
// @Router /healthcheck [get]
func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	response := HealthcheckResponseDTO{Status: "ok"}

	if vm, err := mem.VirtualMemory(); err != nil {
		logger.GetLogger().Error("failed to read memory stats", "error", err)
	} else {
		response.Memory = &ResourceUsageDTO{
			TotalBytes:  vm.Total,
			UsedBytes:   vm.Used,
			UsedPercent: vm.UsedPercent,
		}
	}

	if du, err := disk.Usage("/"); err != nil {
		logger.GetLogger().Error("failed to read disk stats", "error", err)
	} else {
		response.Disk = &ResourceUsageDTO{
			TotalBytes:  du.Total,
			UsedBytes:   du.Used,
			UsedPercent: du.UsedPercent,
		}
	}

	ctx.JSON(http.StatusOK, response)
}
