package revalidation

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func Test_MarkStale_RedisBacked(t *testing.T) {
	mr := miniredis.RunT(t)
	service := NewRevalidationService(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	accountID := uuid.New()
	service.MarkStale(ctx, ClientsTag(accountID), DashboardTag(accountID))
	service.MarkStale(ctx, ClientsTag(accountID))

	tags := service.ConsumeStale(ctx)
	assert.ElementsMatch(t, []string{ClientsTag(accountID), DashboardTag(accountID)}, tags)

	assert.Empty(t, service.ConsumeStale(ctx))
}

// Tags marked while a consume is in flight must reach the next consumer
// instead of being wiped together with the consumed batch.
func Test_ConsumeStale_DoesNotDropConcurrentMarks(t *testing.T) {
	mr := miniredis.RunT(t)
	service := NewRevalidationService(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	const total = 200

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			service.MarkStale(ctx, fmt.Sprintf("accounts/%d/clients", i))
		}
	}()

	consumed := map[string]struct{}{}
	collect := func() {
		for _, tag := range service.ConsumeStale(ctx) {
			consumed[tag] = struct{}{}
		}
	}

	for {
		select {
		case <-done:
			collect()
			assert.Len(t, consumed, total)
			return
		default:
			collect()
		}
	}
}

func Test_MarkStale_FallsBackToMemoryWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	service := NewRevalidationService(client)
	ctx := context.Background()

	mr.Close()

	accountID := uuid.New()
	service.MarkStale(ctx, DealsTag(accountID))

	tags := service.ConsumeStale(ctx)
	assert.Contains(t, tags, DealsTag(accountID))
}

func Test_MarkStale_MemoryOnly(t *testing.T) {
	service := NewRevalidationService(nil)
	ctx := context.Background()

	accountID := uuid.New()
	service.MarkStale(ctx, TasksTag(accountID))
	service.MarkStale(ctx, TasksTag(accountID))

	assert.Equal(t, []string{TasksTag(accountID)}, service.ConsumeStale(ctx))
	assert.Empty(t, service.ConsumeStale(ctx))
}
