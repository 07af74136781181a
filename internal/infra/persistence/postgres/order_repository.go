package postgres

import (
	"context"
	"encoding/json"

	"skuledger/internal/domain/entity"
	domainerrors "skuledger/internal/domain/errors"
	"skuledger/internal/domain/repository"
	"skuledger/internal/errors"
	"skuledger/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists one order row with its normalized line items serialized as a
// JSONB attribute. A duplicate order id (a retried delivery) is surfaced as
// repository.ErrDuplicateOrder and fails the whole request upstream.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return errors.Wrap(err, "failed to serialize line items")
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// --- Mapper Functions ---

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := json.Marshal(data.LineItems)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &model.OrderModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		Email:       data.Email,
		PurchasedAt: data.PurchasedAt,
		TotalPrice:  data.TotalPrice,
		Currency:    data.Currency,
		LineItems:   datatypes.JSON(items),
	}, nil
}
