package job

import (
	"context"

	"github.com/hibiken/asynq"

	"bookstore-backoffice/internal/domains/offer/service"
	"bookstore-backoffice/pkg/logger"
)

// DeactivateExpiredHandler runs on the daily cron and turns off offers
// whose window has passed.
type DeactivateExpiredHandler struct {
	service service.ServiceInterface
}

func NewDeactivateExpiredHandler(svc service.ServiceInterface) *DeactivateExpiredHandler {
	return &DeactivateExpiredHandler{service: svc}
}

func (h *DeactivateExpiredHandler) Handle(ctx context.Context, t *asynq.Task) error {
	count, err := h.service.DeactivateExpiredOffers(ctx)
	if err != nil {
		return err
	}

	logger.Info("offer expiry sweep finished", map[string]interface{}{"deactivated": count})
	return nil
}
