package postgres

import (
	"context"
	"time"

	"skuledger/internal/domain/entity"
	domainerrors "skuledger/internal/domain/errors"
	"skuledger/internal/domain/repository"
	"skuledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counterRepository implements the repository.CounterRepository interface using GORM.
//
// Accumulate and DecrementOnce are deliberately single statements. The legacy
// read-then-write pair loses updates when two deliveries for the same user
// interleave; pushing the arithmetic into the statement makes the store the
// point of serialization.
type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository is the constructor for counterRepository.
func NewCounterRepository(db *gorm.DB) repository.CounterRepository {
	return &counterRepository{
		db: db,
	}
}

// Accumulate adds delta to the user's counter in one upsert: the row is
// created with quantity = delta when absent, otherwise the quantity grows by
// delta. A quantity left NULL by a bot-id save counts as zero.
func (repo *counterRepository) Accumulate(ctx context.Context, userID int64, delta int64, purchasedAt time.Time) error {
	counterM := &model.SKUCounterModel{
		ID:               uuid.New(),
		UserID:           userID,
		SKUQuantity:      &delta,
		LastPurchaseDate: &purchasedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"sku_quantity":       gorm.Expr("COALESCE(user_sku_quantities.sku_quantity, 0) + ?", delta),
				"last_purchase_date": purchasedAt,
				"updated_at":         time.Now(),
			}),
		}).
		Create(counterM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to accumulate sku quantity")
	}

	return nil
}

// FindByUserAndBot returns every counter row matching the (user, bot) pair.
func (repo *counterRepository) FindByUserAndBot(ctx context.Context, userID, botID int64) ([]*entity.SKUCounter, error) {
	var counterModels []*model.SKUCounterModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND bot_id = ?", userID, botID).
		Find(&counterModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find counters by user and bot")
	}

	counters := make([]*entity.SKUCounter, 0, len(counterModels))
	for _, counterM := range counterModels {
		counters = append(counters, toCounterDomain(counterM))
	}

	return counters, nil
}

// DecrementOnce decrements the row by exactly one. The quantity guard lives in
// the WHERE clause, so a row at zero is left untouched and reported via the
// applied flag instead of going negative.
func (repo *counterRepository) DecrementOnce(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SKUCounterModel{}).
		Where("id = ? AND sku_quantity > 0", id).
		Update("sku_quantity", gorm.Expr("sku_quantity - 1"))

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement sku quantity")
	}

	return result.RowsAffected > 0, nil
}

// FindOneByUser reads the user's single counter row, enforcing the single-row
// contract the status endpoint depends on.
func (repo *counterRepository) FindOneByUser(ctx context.Context, userID int64) (*entity.SKUCounter, error) {
	var counterModels []*model.SKUCounterModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(2).
		Find(&counterModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find counter by user")
	}

	switch len(counterModels) {
	case 0:
		return nil, repository.ErrCounterNotFound
	case 1:
		return toCounterDomain(counterModels[0]), nil
	default:
		return nil, repository.ErrMultipleCounterRows
	}
}

// SaveBotID upserts the bot id onto the user's counter row. A fresh row gets
// no quantity; an existing row keeps its quantity and purchase date.
func (repo *counterRepository) SaveBotID(ctx context.Context, userID, botID int64) error {
	counterM := &model.SKUCounterModel{
		ID:     uuid.New(),
		UserID: userID,
		BotID:  &botID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"bot_id":     botID,
				"updated_at": time.Now(),
			}),
		}).
		Create(counterM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save bot id")
	}

	return nil
}

// --- Mapper Functions ---

// toCounterDomain converts a GORM SKUCounterModel to a domain SKUCounter entity.
func toCounterDomain(data *model.SKUCounterModel) *entity.SKUCounter {
	if data == nil {
		return nil
	}

	return &entity.SKUCounter{
		ID:               data.ID,
		UserID:           data.UserID,
		BotID:            data.BotID,
		SKUQuantity:      data.SKUQuantity,
		LastPurchaseDate: data.LastPurchaseDate,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
