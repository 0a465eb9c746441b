package category

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	"github.com/restauratings/internal/worker"
	"go.uber.org/zap"
)

const errorBackoff = time.Second // пауза после ошибки чтения или пересборки

// SnapshotRefresher пересобирает снимок категорий
type SnapshotRefresher interface {
	RefreshSnapshot(ctx context.Context) ([]domain.CategorySummary, error)
}

// SnapshotWorker читает события об изменении ресторанов и пересобирает
// снимок категорий один раз на пачку событий
type SnapshotWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	refresher  SnapshotRefresher
	batchSize  int

	// pending - ID событий, для которых пересборка не удалась; подтверждаются после следующей успешной
	pending []string
}

// NewSnapshotWorker создает новый SnapshotWorker
func NewSnapshotWorker(
	streamRepo repository.StreamRepository,
	refresher SnapshotRefresher,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *SnapshotWorker {
	return &SnapshotWorker{
		BaseWorker: worker.NewBaseWorker("category-snapshot", consumerGroup, logger),
		streamRepo: streamRepo,
		refresher:  refresher,
		batchSize:  batchSize,
	}
}

// Start запускает воркер. Снимок собирается сразу при старте, затем по событиям
func (w *SnapshotWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting category snapshot worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRestaurantChanged, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	if _, err := w.refresher.RefreshSnapshot(ctx); err != nil {
		logger.Warn("Initial snapshot rebuild failed", zap.Error(err))
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			if _, err := w.ProcessBatch(ctx); err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Pause(ctx, errorBackoff)
			}
		}
	}
}

// ProcessBatch читает пачку событий и пересобирает снимок.
// Возвращает количество прочитанных сообщений
func (w *SnapshotWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRestaurantChanged,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	valid := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := parseEvent(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamRestaurantChanged, w.ConsumerGroup(), msg.ID)
			continue
		}

		logger.Debug("Restaurant changed",
			zap.Stringer("restaurant_id", event.RestaurantID),
			zap.String("reason", event.Reason))
		valid = append(valid, msg.ID)
	}

	if len(valid) == 0 {
		return len(messages), nil
	}

	w.pending = append(w.pending, valid...)

	categories, err := w.refresher.RefreshSnapshot(ctx)
	if err != nil {
		return len(messages), fmt.Errorf("snapshot rebuild failed: %w", err)
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamRestaurantChanged, w.ConsumerGroup(), w.pending...); err != nil {
		// Не критично - снимок уже пересобран
		logger.Error("Failed to ack messages", zap.Error(err))
	} else {
		w.pending = w.pending[:0]
	}

	logger.Info("Category snapshot rebuilt",
		zap.Int("events", len(valid)),
		zap.Int("categories", len(categories)))

	return len(messages), nil
}

func parseEvent(msg domain.StreamMessage) (*domain.RestaurantChangedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("empty payload")
	}

	var event domain.RestaurantChangedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}

	if event.RestaurantID == uuid.Nil {
		return nil, fmt.Errorf("missing restaurant_id")
	}

	switch event.Reason {
	case domain.ChangeReasonCreated, domain.ChangeReasonDeleted, domain.ChangeReasonReviewAdded:
	default:
		return nil, fmt.Errorf("unknown reason %q", event.Reason)
	}

	return &event, nil
}
