package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/feral-file/ff-propfi-ledger/internal/store/schema"
)

func relayCursorKey(name string) string {
	return fmt.Sprintf("relay_cursor:%s", name)
}

// GetRelayCursor retrieves the last relayed event sequence, zero when the relay never ran
func (s *pgStore) GetRelayCursor(ctx context.Context, name string) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", relayCursorKey(name)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get relay cursor: %w", err)
	}

	sequence, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse relay cursor: %w", err)
	}
	return sequence, nil
}

// SetRelayCursor stores the last relayed event sequence
func (s *pgStore) SetRelayCursor(ctx context.Context, name string, sequence uint64) error {
	kv := schema.KeyValueStore{
		Key:   relayCursorKey(name),
		Value: strconv.FormatUint(sequence, 10),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set relay cursor: %w", err)
	}
	return nil
}
