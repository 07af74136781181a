package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"skuledger/internal/domain/entity"
	"skuledger/internal/domain/repository"
	mockRepo "skuledger/internal/mocks/repository"
	mockService "skuledger/internal/mocks/service"
	"skuledger/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	counterRepo *mockRepo.MockCounterRepository
	catalog     *mockService.MockProductCatalog
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	counterRepo := mockRepo.NewMockCounterRepository(t)
	catalog := mockService.NewMockProductCatalog(t)
	service := NewOrderService(orderRepo, counterRepo, catalog, slog.Default())

	return orderServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		counterRepo: counterRepo,
		catalog:     catalog,
	}
}

func TestOrderService_ProcessOrder_FirstOrderCreatesCounter(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	payload := &usecase.OrderPayload{
		ID:                1001,
		Customer:          &usecase.OrderCustomer{ID: 42, Email: "buyer@example.com"},
		CreatedAt:         "2024-05-01T10:00:00Z",
		CurrentTotalPrice: "9.99",
		Currency:          "USD",
		LineItems: []usecase.LineItemPayload{
			{Name: "Widget", SKU: "5", Quantity: "1", Price: "9.99"},
		},
	}
	purchasedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	var recorded *entity.Order
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			recorded = order
		}).
		Return(nil)

	fx.counterRepo.EXPECT().
		Accumulate(ctx, int64(42), int64(5), purchasedAt).
		Return(nil)

	output, err := fx.service.ProcessOrder(ctx, payload)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(1001), output.OrderID)
	require.NotNil(t, output.CustomerID)
	assert.Equal(t, int64(42), *output.CustomerID)
	require.Len(t, output.Outcomes, 1)
	assert.True(t, output.Outcomes[0].Accumulated)

	require.NotNil(t, recorded)
	assert.Equal(t, int64(1001), recorded.ID)
	assert.Equal(t, "buyer@example.com", recorded.Email)
	assert.Equal(t, purchasedAt, recorded.PurchasedAt)
	assert.InDelta(t, 9.99, recorded.TotalPrice, 0.0001)
	require.Len(t, recorded.LineItems, 1)
	assert.Equal(t, entity.LineItem{
		ProductName: "Widget",
		SKU:         5,
		Quantity:    1,
		Price:       9.99,
	}, recorded.LineItems[0])
}

func TestOrderService_ProcessOrder_PreservesItemOrderAndAccumulatesPerItem(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	payload := &usecase.OrderPayload{
		ID:        2002,
		Customer:  &usecase.OrderCustomer{ID: 7},
		CreatedAt: "2024-06-15T08:30:00Z",
		Currency:  "EUR",
		LineItems: []usecase.LineItemPayload{
			{Name: "Alpha", SKU: "3", Quantity: "2", Price: "1.50", ProductID: "111"},
			{Name: "Beta", SKU: "10", Quantity: "1", Price: "4.00", ProductID: "222"},
			{Name: "Gamma", SKU: "2", Quantity: "5", Price: "0.99"},
		},
	}
	purchasedAt := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)

	// Metadata is fetched sequentially per item and is purely informational:
	// one hit, one miss, one item without a product id at all.
	fx.catalog.EXPECT().
		GetProduct(ctx, int64(111)).
		Return(&entity.Product{ID: 111, Title: "Alpha Deluxe", Vendor: "Acme"}, nil)
	fx.catalog.EXPECT().
		GetProduct(ctx, int64(222)).
		Return(nil, nil)

	var recorded *entity.Order
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			recorded = order
		}).
		Return(nil)

	fx.counterRepo.EXPECT().Accumulate(ctx, int64(7), int64(3), purchasedAt).Return(nil)
	fx.counterRepo.EXPECT().Accumulate(ctx, int64(7), int64(10), purchasedAt).Return(nil)
	fx.counterRepo.EXPECT().Accumulate(ctx, int64(7), int64(2), purchasedAt).Return(nil)

	output, err := fx.service.ProcessOrder(ctx, payload)
	require.NoError(t, err)
	require.Len(t, output.Outcomes, 3)

	require.NotNil(t, recorded)
	require.Len(t, recorded.LineItems, 3)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, []string{
		recorded.LineItems[0].ProductName,
		recorded.LineItems[1].ProductName,
		recorded.LineItems[2].ProductName,
	})
	assert.Equal(t, int64(15), recorded.SKUSum())
}

func TestOrderService_ProcessOrder_InsertFailureSkipsAccumulation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	payload := &usecase.OrderPayload{
		ID:        3003,
		Customer:  &usecase.OrderCustomer{ID: 9},
		CreatedAt: "2024-07-01T00:00:00Z",
		LineItems: []usecase.LineItemPayload{
			{Name: "Widget", SKU: "5", Quantity: "1", Price: "9.99"},
		},
	}

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateOrder)

	output, err := fx.service.ProcessOrder(ctx, payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateOrder)
	assert.Nil(t, output)
	// The counter repo carries no expectations: recording the order is the
	// sole gate before accumulation.
}

func TestOrderService_ProcessOrder_ItemFailureIsIsolated(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	payload := &usecase.OrderPayload{
		ID:        4004,
		Customer:  &usecase.OrderCustomer{ID: 12},
		CreatedAt: "2024-08-01T12:00:00Z",
		LineItems: []usecase.LineItemPayload{
			{Name: "First", SKU: "4", Quantity: "1", Price: "2.00"},
			{Name: "Second", SKU: "6", Quantity: "1", Price: "3.00"},
		},
	}
	purchasedAt := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.counterRepo.EXPECT().
		Accumulate(ctx, int64(12), int64(4), purchasedAt).
		Return(assert.AnError)
	fx.counterRepo.EXPECT().
		Accumulate(ctx, int64(12), int64(6), purchasedAt).
		Return(nil)

	output, err := fx.service.ProcessOrder(ctx, payload)
	require.NoError(t, err)
	require.Len(t, output.Outcomes, 2)
	assert.False(t, output.Outcomes[0].Accumulated)
	assert.Equal(t, "counter update failed", output.Outcomes[0].Reason)
	assert.True(t, output.Outcomes[1].Accumulated)
}

func TestOrderService_ProcessOrder_NoCustomerSkipsAccumulation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	payload := &usecase.OrderPayload{
		ID:        5005,
		CreatedAt: "2024-09-01T12:00:00Z",
		LineItems: []usecase.LineItemPayload{
			{Name: "Orphan", SKU: "8", Quantity: "1", Price: "1.00"},
		},
	}

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	output, err := fx.service.ProcessOrder(ctx, payload)
	require.NoError(t, err)
	assert.Nil(t, output.CustomerID)
	require.Len(t, output.Outcomes, 1)
	assert.False(t, output.Outcomes[0].Accumulated)
	assert.Equal(t, "order has no customer", output.Outcomes[0].Reason)
}

func TestOrderService_ProcessOrder_MalformedNumbersDegradeToZero(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	payload := &usecase.OrderPayload{
		ID:        6006,
		Customer:  &usecase.OrderCustomer{ID: 21},
		CreatedAt: "2024-10-01T12:00:00Z",
		LineItems: []usecase.LineItemPayload{
			{Name: "Broken", SKU: "WIDGET-XL", Quantity: "", Price: "free"},
		},
	}
	purchasedAt := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

	var recorded *entity.Order
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			recorded = order
		}).
		Return(nil)

	fx.counterRepo.EXPECT().
		Accumulate(ctx, int64(21), int64(0), purchasedAt).
		Return(nil)

	output, err := fx.service.ProcessOrder(ctx, payload)
	require.NoError(t, err)
	require.Len(t, output.Outcomes, 1)

	require.NotNil(t, recorded)
	require.Len(t, recorded.LineItems, 1)
	assert.Equal(t, entity.LineItem{ProductName: "Broken"}, recorded.LineItems[0])
}

// Replaying the identical webhook double-accumulates: there is no idempotency
// key. This characterizes the current contract rather than endorsing it.
func TestOrderService_ProcessOrder_ReplayDoubleAccumulates(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	payload := &usecase.OrderPayload{
		ID:        7007,
		Customer:  &usecase.OrderCustomer{ID: 33},
		CreatedAt: "2024-11-01T12:00:00Z",
		LineItems: []usecase.LineItemPayload{
			{Name: "Widget", SKU: "5", Quantity: "1", Price: "9.99"},
		},
	}
	purchasedAt := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil).
		Twice()

	fx.counterRepo.EXPECT().
		Accumulate(ctx, int64(33), int64(5), purchasedAt).
		Return(nil).
		Twice()

	_, err := fx.service.ProcessOrder(ctx, payload)
	require.NoError(t, err)
	_, err = fx.service.ProcessOrder(ctx, payload)
	require.NoError(t, err)
}
