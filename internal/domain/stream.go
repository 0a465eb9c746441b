package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamRestaurantChanged = "stream:restaurant:changed"
)

// Причины изменения ресторана
const (
	ChangeReasonCreated     = "created"
	ChangeReasonDeleted     = "deleted"
	ChangeReasonReviewAdded = "review_added"
)

// RestaurantChangedEvent - событие об изменении данных ресторана
type RestaurantChangedEvent struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Style        string    `json:"style,omitempty"`
	Reason       string    `json:"reason"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
