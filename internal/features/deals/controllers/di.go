package deals_controllers

import (
	"sync"

	deals_services "clientbase-backend/internal/features/deals/services"
)

var (
	dealController     *DealController
	dealControllerOnce sync.Once
)

func GetDealController() *DealController {
	dealControllerOnce.Do(func() {
		dealController = &DealController{deals_services.GetDealService()}
	})

	return dealController
}
