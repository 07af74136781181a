package postgres

import (
	"context"

	"skuledger/internal/domain/entity"
	domainerrors "skuledger/internal/domain/errors"
	"skuledger/internal/domain/repository"
	"skuledger/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists one customer registration. The external customer id is the
// primary key, so a replayed registration event fails here rather than
// silently producing a second row.
func (repo *userRepository) Create(ctx context.Context, customer *entity.Customer) error {
	userM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCustomerInsertFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	return nil
}

// --- Mapper Functions ---

// fromCustomerDomain converts a domain Customer entity to a GORM UserModel.
func fromCustomerDomain(data *entity.Customer) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Email:            data.Email,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Phone:            data.Phone,
		Currency:         data.Currency,
		State:            data.State,
		Note:             data.Note,
		Tags:             data.Tags,
		VerifiedEmail:    data.VerifiedEmail,
		TaxExempt:        data.TaxExempt,
		AcceptsMarketing: data.AcceptsMarketing,
		OrdersCount:      data.OrdersCount,
		TotalSpent:       data.TotalSpent,
		LastOrderID:      data.LastOrderID,
		CustomerSince:    data.CreatedAt,
	}
}
