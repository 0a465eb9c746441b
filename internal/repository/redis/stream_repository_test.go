package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restauratings/internal/domain"
	redisRepo "github.com/restauratings/internal/repository/redis"
)

const testStream = "test:stream:restaurant:changed"

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testStream)
		client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 100*time.Millisecond, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))

	groups, err := client.XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))
}

func TestStreamRepository_PublishAndConsumeBatch(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 100*time.Millisecond, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-batch-group"))

	events := []domain.RestaurantChangedEvent{
		{RestaurantID: uuid.New(), Style: "pizza", Reason: domain.ChangeReasonCreated},
		{RestaurantID: uuid.New(), Style: "cafe", Reason: domain.ChangeReasonReviewAdded},
	}
	for _, e := range events {
		require.NoError(t, repo.PublishToStream(ctx, testStream, e))
	}

	messages, err := repo.ConsumeBatch(ctx, testStream, "test-batch-group", "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	var first domain.RestaurantChangedEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &first))
	assert.Equal(t, events[0].RestaurantID, first.RestaurantID)
	assert.Equal(t, domain.ChangeReasonCreated, first.Reason)

	// Nothing new for the group
	empty, err := repo.ConsumeBatch(ctx, testStream, "test-batch-group", "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStreamRepository_AckMessage(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 100*time.Millisecond, zap.NewNop())
	ctx := context.Background()
	group := "test-ack-group"

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, group))
	require.NoError(t, repo.PublishToStream(ctx, testStream, domain.RestaurantChangedEvent{
		RestaurantID: uuid.New(),
		Style:        "bakery",
		Reason:       domain.ChangeReasonDeleted,
	}))

	messages, err := repo.ConsumeBatch(ctx, testStream, group, "consumer-1", 1)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	pending, err := client.XPending(ctx, testStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Count)

	require.NoError(t, repo.AckMessage(ctx, testStream, group, messages[0].ID))

	pending, err = client.XPending(ctx, testStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_MessageWithoutDataField(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 100*time.Millisecond, zap.NewNop())
	ctx := context.Background()
	group := "test-malformed-group"

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, group))
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: testStream,
		Values: map[string]interface{}{"payload": "x"},
	}).Err())

	messages, err := repo.ConsumeBatch(ctx, testStream, group, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Empty(t, messages[0].Data)
}
