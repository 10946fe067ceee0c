package revalidation

import (
	"sync"

	"clientbase-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

var (
	revalidationService     *RevalidationService
	revalidationServiceOnce sync.Once

	revalidationController     *RevalidationController
	revalidationControllerOnce sync.Once
)

func GetRevalidationService() *RevalidationService {
	revalidationServiceOnce.Do(func() {
		var client *redis.Client

		if addr := config.GetEnv().RedisAddr; addr != "" {
			client = redis.NewClient(&redis.Options{Addr: addr})
		}

		revalidationService = NewRevalidationService(client)
	})

	return revalidationService
}

func GetRevalidationController() *RevalidationController {
	revalidationControllerOnce.Do(func() {
		revalidationController = &RevalidationController{GetRevalidationService()}
	})

	return revalidationController
}
