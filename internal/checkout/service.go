package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/shopassist-backend/internal/orders"
	"github.com/angelmondragon/shopassist-backend/internal/products"
	"github.com/angelmondragon/shopassist-backend/pkg/db"
	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
	"github.com/angelmondragon/shopassist-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
	"github.com/angelmondragon/shopassist-backend/pkg/metrics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	msgOrderPlaced  = "Order placed successfully!"
	msgNotFound     = "Product with ID %d not found in inventory."
	msgStorageError = "Database error during checkout."
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// OutcomeRecorder observes checkout results.
type OutcomeRecorder interface {
	IncOutcome(outcome string)
	ObserveAmount(total float64)
}

// Result is returned to the client after a successful checkout.
type Result struct {
	Message     string  `json:"message"`
	OrderID     int64   `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

// Service places orders. Every call creates a new order; retries are not deduplicated here.
type Service interface {
	Place(ctx context.Context, userID string, items []CartItem) (*Result, error)
}

// Option customizes the service.
type Option func(*service)

// WithClock overrides the order date source.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

type service struct {
	tx          txRunner
	productRepo *products.Repository
	ordersRepo  orders.Repository
	logg        *logger.Logger
	metrics     OutcomeRecorder
	now         func() time.Time
}

// NewService builds the checkout service.
func NewService(
	tx txRunner,
	productRepo *products.Repository,
	ordersRepo orders.Repository,
	logg *logger.Logger,
	recorder OutcomeRecorder,
	opts ...Option,
) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	svc := &service{
		tx:          tx,
		productRepo: productRepo,
		ordersRepo:  ordersRepo,
		logg:        logg,
		metrics:     recorder,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) Place(ctx context.Context, userID string, items []CartItem) (*Result, error) {
	if len(items) == 0 {
		s.record(metrics.CheckoutValidation)
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgCartEmpty)
	}

	var order *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		lines, total, err := s.priceItems(ctx, s.productRepo.WithTx(tx), items)
		if err != nil {
			return err
		}

		ordersRepo := s.ordersRepo.WithTx(tx)
		order, err = ordersRepo.CreateOrder(ctx, &models.Order{
			UserID:      userID,
			OrderDate:   s.now().UTC(),
			TotalAmount: total,
			Status:      enums.OrderStatusCompleted,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, msgStorageError)
		}

		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := ordersRepo.CreateOrderItems(ctx, lines); err != nil {
			if db.IsForeignKeyViolation(err) {
				return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "A product in the cart is no longer in inventory.")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, msgStorageError)
		}
		return nil
	})
	if err != nil {
		if pkgerrors.As(err) == nil {
			err = pkgerrors.Wrap(pkgerrors.CodeInternal, err, msgStorageError)
		}
		s.record(outcomeFor(err))
		return nil, err
	}

	total := order.TotalAmount.Round(2).InexactFloat64()
	s.record(metrics.CheckoutCompleted)
	if s.metrics != nil {
		s.metrics.ObserveAmount(total)
	}
	logCtx := s.logg.WithFields(ctx, map[string]any{"order_id": order.ID, "items": len(items), "total_amount": total})
	s.logg.Info(logCtx, "checkout.order_placed")

	return &Result{Message: msgOrderPlaced, OrderID: order.ID, TotalAmount: total}, nil
}

// priceItems walks the cart in input order. Shape errors and unknown products
// abort on the first offending line; prices always come from the catalog.
func (s *service) priceItems(ctx context.Context, repo *products.Repository, items []CartItem) ([]models.OrderItem, decimal.Decimal, error) {
	lines := make([]models.OrderItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		if err := item.Err(); err != nil {
			return nil, decimal.Zero, err
		}
		product, err := repo.FindByID(ctx, item.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Zero, pkgerrors.Newf(pkgerrors.CodeNotFound, msgNotFound, item.ProductID).
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
		if err != nil {
			return nil, decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, msgStorageError)
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
		lines = append(lines, models.OrderItem{
			ProductID:       product.ID,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.Price,
		})
	}
	return lines, total, nil
}

func (s *service) record(outcome string) {
	if s.metrics != nil {
		s.metrics.IncOutcome(outcome)
	}
}

func outcomeFor(err error) string {
	switch pkgerrors.As(err).Code() {
	case pkgerrors.CodeValidation:
		return metrics.CheckoutValidation
	case pkgerrors.CodeNotFound:
		return metrics.CheckoutNotFound
	default:
		return metrics.CheckoutStorage
	}
}
