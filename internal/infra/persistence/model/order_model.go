package model

import (
	"time"

	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table. The primary
// key is the external order id; line items are stored as a JSONB blob in the
// shape produced by normalization.
type OrderModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	CustomerID  *int64 `gorm:"index"`
	Email       string `gorm:"type:varchar(255)"`
	PurchasedAt time.Time
	TotalPrice  float64        `gorm:"type:numeric(12,2)"`
	Currency    string         `gorm:"type:varchar(10)"`
	LineItems   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
