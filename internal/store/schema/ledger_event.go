package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LedgerEvent represents the ledger_events table - the outbox of committed operations
type LedgerEvent struct {
	// Sequence is an auto-incrementing number giving the commit order
	Sequence int64 `gorm:"column:sequence;primaryKey;autoIncrement"`
	// EventID is the ULID of the event, used for deduplication downstream
	EventID string `gorm:"column:event_id;not null;type:text;uniqueIndex"`
	// EventType is the kind of operation (property.initialized, property.purchased, ...)
	EventType string `gorm:"column:event_type;not null;type:text"`
	// PropertyAddress is the property the operation targeted
	PropertyAddress string `gorm:"column:property_address;not null;type:text;index"`
	// Payload is the event-specific body
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// CreatedAt is the time the operation executed
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the LedgerEvent model
func (LedgerEvent) TableName() string {
	return "ledger_events"
}
