// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"
)

// UserModel is the GORM-specific struct for the 'users' table. One row per
// "customer created" webhook delivery; the primary key is the external
// customer id, so a replayed registration collides on insert.
type UserModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement:false"`
	Email            string `gorm:"type:varchar(255)"`
	FirstName        string `gorm:"type:varchar(255)"`
	LastName         string `gorm:"type:varchar(255)"`
	Phone            string `gorm:"type:varchar(50)"`
	Currency         string `gorm:"type:varchar(10)"`
	State            string `gorm:"type:varchar(50)"`
	Note             string `gorm:"type:text"`
	Tags             string `gorm:"type:text"`
	VerifiedEmail    bool
	TaxExempt        bool
	AcceptsMarketing bool
	OrdersCount      int64
	TotalSpent       string `gorm:"type:varchar(50)"`
	LastOrderID      *int64
	CustomerSince    time.Time `gorm:"column:customer_created_at"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
