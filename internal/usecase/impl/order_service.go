package impl

import (
	"context"
	"log/slog"
	"time"

	"skuledger/internal/domain/entity"
	"skuledger/internal/domain/repository"
	"skuledger/internal/domain/service"
	"skuledger/internal/errors"
	"skuledger/internal/usecase"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	counterRepo repository.CounterRepository
	catalog     service.ProductCatalog
	logger      *slog.Logger
}

// NewOrderService creates the order-processing use case instance.
func NewOrderService(
	orderRepo repository.OrderRepository,
	counterRepo repository.CounterRepository,
	catalog service.ProductCatalog,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   orderRepo,
		counterRepo: counterRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// ProcessOrder normalizes the payload's line items, records the order, then
// accumulates the customer's SKU counter per item. The order insert is the
// sole gate: when it fails, no accumulation is attempted and the whole request
// fails. Accumulation failures after a recorded order are isolated per item.
func (s *orderService) ProcessOrder(ctx context.Context, payload *usecase.OrderPayload) (*usecase.ProcessOrderOutput, error) {
	order := s.buildOrder(ctx, payload)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to record order")
	}

	s.logger.InfoContext(ctx, "order recorded",
		slog.Int64("orderID", order.ID),
		slog.Int("lineItems", len(order.LineItems)),
		slog.Int64("skuSum", order.SKUSum()),
	)

	outcomes := s.accumulate(ctx, order)

	return &usecase.ProcessOrderOutput{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Outcomes:   outcomes,
	}, nil
}

func (s *orderService) buildOrder(ctx context.Context, payload *usecase.OrderPayload) *entity.Order {
	purchasedAt, ok := coerceTime(payload.CreatedAt)
	if !ok {
		s.logger.WarnContext(ctx, "order has no parsable created_at, using current time",
			slog.Int64("orderID", payload.ID),
			slog.String("raw", payload.CreatedAt),
		)
		purchasedAt = time.Now().UTC()
	}

	totalPrice, ok := coerceFloat64(payload.CurrentTotalPrice.String())
	if !ok && payload.CurrentTotalPrice != "" {
		s.logger.WarnContext(ctx, "order has malformed total price",
			slog.Int64("orderID", payload.ID),
			slog.String("raw", payload.CurrentTotalPrice.String()),
		)
	}

	order := &entity.Order{
		ID:          payload.ID,
		Email:       payload.Email,
		PurchasedAt: purchasedAt,
		TotalPrice:  totalPrice,
		Currency:    payload.Currency,
		LineItems:   s.normalizeLineItems(ctx, payload.LineItems),
	}

	if payload.Customer != nil {
		customerID := payload.Customer.ID
		order.CustomerID = &customerID
		if order.Email == "" {
			order.Email = payload.Customer.Email
		}
	}

	return order
}

// normalizeLineItems maps raw line items into their canonical shape, in input
// order. Each item's catalog metadata is fetched first, sequentially; the
// fetch is best-effort and the metadata is only logged, never persisted.
func (s *orderService) normalizeLineItems(ctx context.Context, rawItems []usecase.LineItemPayload) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(rawItems))

	for _, raw := range rawItems {
		if productID, ok := coerceInt64(raw.ProductID.String()); ok {
			product, _ := s.catalog.GetProduct(ctx, productID)
			if product != nil {
				s.logger.InfoContext(ctx, "fetched catalog metadata",
					slog.Int64("productID", product.ID),
					slog.String("title", product.Title),
					slog.String("vendor", product.Vendor),
				)
			}
		}

		sku, ok := coerceInt64(raw.SKU.String())
		if !ok {
			s.logger.WarnContext(ctx, "line item has non-numeric sku",
				slog.String("product", raw.Name),
				slog.String("raw", raw.SKU.String()),
			)
		}

		quantity, ok := coerceInt64(raw.Quantity.String())
		if !ok {
			s.logger.WarnContext(ctx, "line item has non-numeric quantity",
				slog.String("product", raw.Name),
				slog.String("raw", raw.Quantity.String()),
			)
		}

		price, ok := coerceFloat64(raw.Price.String())
		if !ok && raw.Price != "" {
			s.logger.WarnContext(ctx, "line item has malformed price",
				slog.String("product", raw.Name),
				slog.String("raw", raw.Price.String()),
			)
		}

		items = append(items, entity.LineItem{
			ProductName:       raw.Name,
			SKU:               sku,
			Quantity:          quantity,
			Price:             price,
			FulfillmentStatus: raw.FulfillmentStatus,
		})
	}

	return items
}

// accumulate runs one atomic counter upsert per line item. The accrued unit is
// the parsed SKU value, matching the legacy counter semantics. Failures are
// isolated: a failed item is logged and reported in its outcome, siblings
// still run, and the order webhook still succeeds.
func (s *orderService) accumulate(ctx context.Context, order *entity.Order) []usecase.ItemOutcome {
	outcomes := make([]usecase.ItemOutcome, 0, len(order.LineItems))

	if order.CustomerID == nil {
		s.logger.WarnContext(ctx, "order has no customer, skipping sku accumulation",
			slog.Int64("orderID", order.ID),
		)
		for _, item := range order.LineItems {
			outcomes = append(outcomes, usecase.ItemOutcome{
				ProductName: item.ProductName,
				SKU:         item.SKU,
				Accumulated: false,
				Reason:      "order has no customer",
			})
		}

		return outcomes
	}

	for _, item := range order.LineItems {
		outcome := usecase.ItemOutcome{
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Accumulated: true,
		}

		if err := s.counterRepo.Accumulate(ctx, *order.CustomerID, item.SKU, order.PurchasedAt); err != nil {
			s.logger.ErrorContext(ctx, "failed to accumulate sku quantity",
				slog.Int64("orderID", order.ID),
				slog.Int64("customerID", *order.CustomerID),
				slog.Int64("sku", item.SKU),
				slog.String("error", err.Error()),
			)
			outcome.Accumulated = false
			outcome.Reason = "counter update failed"
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
