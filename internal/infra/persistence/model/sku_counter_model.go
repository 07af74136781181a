package model

import (
	"time"

	"github.com/google/uuid"
)

// SKUCounterModel is the GORM-specific struct for the 'user_sku_quantities'
// table. One row per user (unique user_id); the bot id is an attribute set by
// the save-association endpoint. SKUQuantity is nullable: rows created by a
// bot-id save carry no quantity until the first order accrues one.
type SKUCounterModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           int64     `gorm:"uniqueIndex;not null"`
	BotID            *int64
	SKUQuantity      *int64     `gorm:"column:sku_quantity"`
	LastPurchaseDate *time.Time `gorm:"column:last_purchase_date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SKUCounterModel) TableName() string {
	return "user_sku_quantities"
}
