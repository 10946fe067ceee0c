package revalidation

import (
	"context"
	"fmt"
	"sync"

	"clientbase-backend/internal/util/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const staleSetKey = "revalidation:stale"

// Tag builders. Tags follow the resource paths the frontend caches under.

func ClientsTag(accountID uuid.UUID) string {
	return fmt.Sprintf("accounts/%s/clients", accountID)
}

func DealsTag(accountID uuid.UUID) string {
	return fmt.Sprintf("accounts/%s/deals", accountID)
}

func TasksTag(accountID uuid.UUID) string {
	return fmt.Sprintf("accounts/%s/tasks", accountID)
}

func DashboardTag(accountID uuid.UUID) string {
	return fmt.Sprintf("accounts/%s/dashboard", accountID)
}

// RevalidationService records which cached views became stale after a
// mutation. Tags live in Redis so every backend instance sees them; when
// Redis is unconfigured or unreachable the service keeps them in memory,
// which is good enough for a single instance.
type RevalidationService struct {
	client *redis.Client

	mu    sync.Mutex
	local map[string]struct{}
}

func NewRevalidationService(client *redis.Client) *RevalidationService {
	return &RevalidationService{
		client: client,
		local:  map[string]struct{}{},
	}
}

// MarkStale never fails the mutation that triggered it. Losing a tag means a
// cache stays warm a little longer, not data loss.
func (s *RevalidationService) MarkStale(ctx context.Context, tags ...string) {
	if len(tags) == 0 {
		return
	}

	if s.client != nil {
		members := make([]interface{}, 0, len(tags))
		for _, tag := range tags {
			members = append(members, tag)
		}

		if err := s.client.SAdd(ctx, staleSetKey, members...).Err(); err == nil {
			return
		} else {
			logger.GetLogger().Error("failed to mark tags stale in redis", "error", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tag := range tags {
		s.local[tag] = struct{}{}
	}
}

// ConsumeStale returns the accumulated stale tags and clears them.
func (s *RevalidationService) ConsumeStale(ctx context.Context) []string {
	tags := []string{}

	if s.client != nil {
		members, err := s.client.SMembers(ctx, staleSetKey).Result()
		if err != nil {
			logger.GetLogger().Error("failed to read stale tags from redis", "error", err)
		} else {
			if len(members) > 0 {
				// Remove only the members we read. Tags added between the
				// read and the removal survive for the next consumer.
				removed := make([]interface{}, 0, len(members))
				for _, member := range members {
					removed = append(removed, member)
				}

				if err := s.client.SRem(ctx, staleSetKey, removed...).Err(); err != nil {
					logger.GetLogger().Error("failed to clear stale tags in redis", "error", err)
				}
			}

			tags = append(tags, members...)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for tag := range s.local {
		tags = append(tags, tag)
	}

	s.local = map[string]struct{}{}

	return tags
}
