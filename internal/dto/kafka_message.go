package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

// IdentityUserEvent is the payload of user_created events published by the
// identity provider's sync pipeline.
type IdentityUserEvent struct {
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ImageURL   string `json:"image_url"`
}

// IdentityUserDeletedEvent is the payload of user_deleted events.
type IdentityUserDeletedEvent struct {
	ExternalID string `json:"external_id"`
}

type OrderEvent struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	ExternalID  string  `json:"external_id"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
}
