package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"bookstore-backoffice/internal/domains/order/model"
	"bookstore-backoffice/internal/domains/order/repository"
	"bookstore-backoffice/internal/infrastructure/email"
	"bookstore-backoffice/internal/shared"
	"bookstore-backoffice/pkg/logger"
)

// SendConfirmationHandler mails the order confirmation. The payload only
// carries identifiers; the order is re-read so the mail reflects whatever
// the row says by the time the task runs.
type SendConfirmationHandler struct {
	orders repository.RepositoryInterface
	mailer email.EmailService
}

func NewSendConfirmationHandler(orders repository.RepositoryInterface, mailer email.EmailService) *SendConfirmationHandler {
	return &SendConfirmationHandler{orders: orders, mailer: mailer}
}

func (h *SendConfirmationHandler) Handle(ctx context.Context, t *asynq.Task) error {
	var payload shared.OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid order confirmation payload: %w", err)
	}

	order, err := h.orders.GetByID(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			// The order vanished; retrying cannot bring it back.
			logger.Warn("order gone before confirmation mail, dropping task", err)
			return nil
		}
		return err
	}

	if order.Status == model.StatusCancelled {
		logger.Info("skipping confirmation for cancelled order", map[string]interface{}{
			"order_number": order.OrderNumber,
		})
		return nil
	}

	err = h.mailer.SendOrderConfirmation(ctx, email.OrderConfirmationData{
		Email:       payload.Email,
		OrderNumber: order.OrderNumber,
		Total:       order.TotalAmount.String(),
		ItemCount:   len(order.Items),
	})
	if err != nil {
		return err
	}

	logger.Info("order confirmation sent", map[string]interface{}{
		"order_number": order.OrderNumber,
		"email":        payload.Email,
	})
	return nil
}
