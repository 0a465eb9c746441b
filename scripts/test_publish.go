//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/restauratings/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	style := flag.String("style", domain.CuisinePizza, "cuisine tag of the changed restaurant")
	reason := flag.String("reason", domain.ChangeReasonCreated, "created | deleted | review_added")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Снимок до публикации, чтобы увидеть пересборку
	before, _ := client.Get(ctx, domain.CacheKeyCategoriesSnapshot).Result()
	client.Del(ctx, domain.CacheKeyCategoriesSnapshot)

	event := domain.RestaurantChangedEvent{
		RestaurantID: uuid.New(),
		Style:        *style,
		Reason:       *reason,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRestaurantChanged,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRestaurantChanged)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Restaurant ID: %s\n", event.RestaurantID)
	fmt.Printf("   Reason: %s\n", event.Reason)

	fmt.Printf("\n⏳ Waiting for the worker to rebuild %s...\n", domain.CacheKeyCategoriesSnapshot)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for snapshot rebuild")
			return
		case <-ticker.C:
			snapshot, err := client.Get(ctx, domain.CacheKeyCategoriesSnapshot).Result()
			if err != nil {
				continue
			}

			var categories []domain.CategorySummary
			if err := json.Unmarshal([]byte(snapshot), &categories); err != nil {
				fmt.Printf("❌ Snapshot is not valid JSON: %v\n", err)
				return
			}

			fmt.Printf("\n✅ Snapshot rebuilt (changed: %t)\n", snapshot != before)
			for _, c := range categories {
				fmt.Printf("   %-14s %3d  center %.4f, %.4f\n",
					domain.CuisineDisplayName(c.Category), c.Count, c.Center.Lat, c.Center.Lng)
			}
			return
		}
	}
}
