package service

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	bookmodel "bookstore-backoffice/internal/domains/book/model"
	bookrepo "bookstore-backoffice/internal/domains/book/repository"
	customerservice "bookstore-backoffice/internal/domains/customer/service"
	"bookstore-backoffice/internal/domains/order/model"
	"bookstore-backoffice/internal/domains/order/repository"
	"bookstore-backoffice/internal/infrastructure/queue"
	"bookstore-backoffice/internal/shared"
	"bookstore-backoffice/pkg/cache"
	"bookstore-backoffice/pkg/logger"
)

type orderService struct {
	repo        repository.RepositoryInterface
	customers   customerservice.ServiceInterface
	books       bookrepo.RepositoryInterface
	enqueuer    queue.Enqueuer
	cache       cache.Cache
	deductStock bool
}

func NewOrderService(
	repo repository.RepositoryInterface,
	customers customerservice.ServiceInterface,
	books bookrepo.RepositoryInterface,
	enqueuer queue.Enqueuer,
	c cache.Cache,
	deductStock bool,
) ServiceInterface {
	return &orderService{
		repo:        repo,
		customers:   customers,
		books:       books,
		enqueuer:    enqueuer,
		cache:       c,
		deductStock: deductStock,
	}
}

// CreateOrder runs the full intake workflow:
//
//  1. validate the request shape
//  2. resolve the contact details to a customer row
//  3. price each line against the current catalog, snapshotting title
//     and unit price
//  4. write the order and its items in one transaction, deducting stock
//     in the same transaction when stock tracking is on
//
// The customer write happens before the order transaction on purpose: a
// resolved customer is useful even if the order insert fails, and each
// resolution step is a single atomic row write.
func (s *orderService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customers.CreateOrGet(ctx, &req.Customer)
	if err != nil {
		return nil, err
	}

	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		CustomerID:      customer.ID,
		Status:          model.StatusPending,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
		Items:           items,
	}

	// One retry covers an order-number collision; a second collision in a
	// row means something else is wrong.
	for attempt := 0; attempt < 2; attempt++ {
		order.OrderNumber = model.NewOrderNumber(time.Now())
		err = s.writeOrder(ctx, order)
		if !errors.Is(err, model.ErrOrderNumberTaken) {
			break
		}
		logger.Warn("order number collision, regenerating", err)
	}
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)
	s.enqueueConfirmation(order, customer.Email)

	logger.Info("order created", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"customer_id":  customer.ID,
		"total":        order.TotalAmount.String(),
		"items":        len(order.Items),
	})
	return order, nil
}

// buildItems prices the requested lines. Every referenced book must exist;
// title and unit price are copied so later catalog edits leave the order
// untouched.
func (s *orderService) buildItems(ctx context.Context, reqs []model.OrderItemRequest) ([]model.OrderItem, decimal.Decimal, error) {
	items := make([]model.OrderItem, 0, len(reqs))
	total := decimal.Zero

	for _, line := range reqs {
		book, err := s.books.GetByID(ctx, line.BookID)
		if err != nil {
			return nil, decimal.Zero, err
		}

		subtotal := book.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, model.OrderItem{
			BookID:    book.ID,
			BookTitle: book.Title,
			UnitPrice: book.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	return items, total, nil
}

// writeOrder persists the order, its items and any stock adjustments in a
// single transaction.
func (s *orderService) writeOrder(ctx context.Context, order *model.Order) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.repo.CreateOrderTx(ctx, tx, order); err != nil {
		return err
	}
	if err := s.repo.CreateOrderItemsTx(ctx, tx, order.ID, order.Items); err != nil {
		return err
	}

	if s.deductStock {
		for _, item := range order.Items {
			book, err := s.books.GetByIDForUpdateTx(ctx, tx, item.BookID)
			if err != nil {
				return err
			}
			if book.Stock < item.Quantity {
				return bookmodel.ErrInsufficientStock
			}
			// Exhausting stock clears availability; otherwise a manual
			// unavailable flag stays as the operator set it.
			remaining := book.Stock - item.Quantity
			available := remaining > 0 && book.IsAvailable
			if err := s.books.UpdateStockTx(ctx, tx, book.ID, remaining, available); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	return s.repo.GetByNumber(ctx, orderNumber)
}

func (s *orderService) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error) {
	filter.Normalize()
	if filter.Status != "" && !model.IsValidStatus(filter.Status) {
		return nil, 0, model.ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	if !model.IsValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(current.Status, status) {
		return nil, model.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)
	logger.Info("order status updated", map[string]interface{}{
		"order_id": id,
		"from":     current.Status,
		"to":       status,
	})
	return updated, nil
}

func (s *orderService) enqueueConfirmation(order *model.Order, email string) {
	err := s.enqueuer.Enqueue(shared.TypeOrderSendConfirmation, shared.OrderConfirmationPayload{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Email:       email,
	}, asynq.Queue(shared.QueueEmail), asynq.MaxRetry(5))
	if err != nil {
		// The order is committed; a lost email is an annoyance, not a failure.
		logger.Warn("failed to enqueue order confirmation", err)
	}
}

func (s *orderService) invalidateDashboard(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "stats:*"); err != nil {
		logger.Warn("failed to invalidate dashboard cache", err)
	}
}
