package shared

// Asynq task type names. Grouped by queue so the worker can weight them.
const (
	TypeOrderSendConfirmation   = "order:send_confirmation"
	TypeBookProcessImage        = "book:process_image"
	TypeOfferDeactivateExpired  = "offer:deactivate_expired"

	QueueDefault = "default"
	QueueEmail   = "email"
	QueueImages  = "images"
)

// OrderConfirmationPayload carries what the confirmation email needs; the
// handler re-reads the order, so only identifiers travel through Redis.
type OrderConfirmationPayload struct {
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Email       string `json:"email"`
}

// ProcessImagePayload asks the worker to generate resized variants for a
// book cover already uploaded to object storage.
type ProcessImagePayload struct {
	BookID    int64  `json:"book_id"`
	ObjectKey string `json:"object_key"`
}
