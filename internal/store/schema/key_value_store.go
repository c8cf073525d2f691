package schema

import "time"

// KeyValueStore holds small pieces of process state such as relay cursors
type KeyValueStore struct {
	// Key is namespaced, e.g. "relay_cursor:default"
	Key   string `gorm:"column:key;primaryKey;type:text"`
	Value string `gorm:"column:value;type:text;not null"`
	// UpdatedAt is maintained by gorm on save
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the KeyValueStore model
func (KeyValueStore) TableName() string {
	return "key_value_store"
}
