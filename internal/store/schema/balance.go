package schema

import (
	"time"
)

// ShareBalance represents the share_balances table - units of a share unit held by an owner
type ShareBalance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UnitID references the share unit being held
	UnitID string `gorm:"column:unit_id;not null;type:text;uniqueIndex:idx_share_balances_unit_owner,priority:1"`
	// OwnerAddress is the identity holding the units
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;uniqueIndex:idx_share_balances_unit_owner,priority:2"`
	// Quantity is the number of units held (u64 stored as numeric)
	Quantity string `gorm:"column:quantity;not null;type:numeric(20,0)"`
	// CreatedAt is the timestamp when this balance was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ShareBalance model
func (ShareBalance) TableName() string {
	return "share_balances"
}

// CurrencyBalance represents the currency_balances table - base currency held by an account
type CurrencyBalance struct {
	// OwnerAddress is the account identity
	OwnerAddress string `gorm:"column:owner_address;primaryKey;type:text"`
	// Amount is the balance in base currency units (u64 stored as numeric)
	Amount string `gorm:"column:amount;not null;type:numeric(20,0)"`
	// CreatedAt is the timestamp when this balance was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CurrencyBalance model
func (CurrencyBalance) TableName() string {
	return "currency_balances"
}
