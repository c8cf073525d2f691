package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/store/schema"
)

// outboxLockKey serializes the tail of every writing transaction so that ledger_events
// sequences are assigned in commit order
const outboxLockKey = 0x70726f70666931

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool of the underlying *sql.DB.
// Zero values fall back to NormalizeConnectionPoolSettings defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults (20 open, 5 idle, 5m lifetime, 10m idle time)
// and keeps MaxIdleConns within MaxOpenConns
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Transaction runs fn inside a database transaction
func (s *pgStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgTx{db: tx})
	})
}

// GetProperty retrieves a property by its record address
func (s *pgStore) GetProperty(ctx context.Context, address domain.Address) (*domain.Property, error) {
	var row schema.Property
	err := s.db.WithContext(ctx).Where("address = ?", address.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return fromPropertyRow(&row)
}

// GetProperties retrieves properties matching filter, oldest first
func (s *pgStore) GetProperties(ctx context.Context, filter PropertyQueryFilter) ([]*domain.Property, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Property{})
	if filter.Owner != nil {
		query = query.Where("owner_address = ?", filter.Owner.String())
	}
	if filter.Listed != nil {
		query = query.Where("is_listed = ?", *filter.Listed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	var rows []schema.Property
	err := query.
		Order("created_at ASC, address ASC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get properties: %w", err)
	}

	properties := make([]*domain.Property, 0, len(rows))
	for i := range rows {
		p, err := fromPropertyRow(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		properties = append(properties, p)
	}

	return properties, uint64(total), nil //nolint:gosec,G115
}

// GetShareUnit retrieves a share unit by id
func (s *pgStore) GetShareUnit(ctx context.Context, id domain.Address) (*domain.ShareUnit, error) {
	var row schema.ShareUnit
	err := s.db.WithContext(ctx).Where("id = ?", id.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShareUnitNotFound
		}
		return nil, fmt.Errorf("failed to get share unit: %w", err)
	}
	return fromShareUnitRow(&row)
}

// GetShareBalance retrieves the share balance of owner
func (s *pgStore) GetShareBalance(ctx context.Context, unitID, owner domain.Address) (uint64, error) {
	var row schema.ShareBalance
	err := s.db.WithContext(ctx).
		Where("unit_id = ? AND owner_address = ?", unitID.String(), owner.String()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get share balance: %w", err)
	}
	return parseAmount("quantity", row.Quantity)
}

// GetCurrencyBalance retrieves the base currency balance of owner
func (s *pgStore) GetCurrencyBalance(ctx context.Context, owner domain.Address) (uint64, error) {
	var row schema.CurrencyBalance
	err := s.db.WithContext(ctx).Where("owner_address = ?", owner.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get currency balance: %w", err)
	}
	return parseAmount("amount", row.Amount)
}

// GetLedgerEvents retrieves committed events after filter.After in sequence order
func (s *pgStore) GetLedgerEvents(ctx context.Context, filter LedgerEventQueryFilter) ([]*domain.LedgerEvent, error) {
	query := s.db.WithContext(ctx).Where("sequence > ?", filter.After)
	if filter.Property != nil {
		query = query.Where("property_address = ?", filter.Property.String())
	}

	var rows []schema.LedgerEvent
	err := query.Order("sequence ASC").Limit(normalizeLimit(filter.Limit)).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger events: %w", err)
	}

	events := make([]*domain.LedgerEvent, 0, len(rows))
	for i := range rows {
		e, err := fromLedgerEventRow(&rows[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// pgTx implements Tx on a gorm transaction
type pgTx struct {
	db *gorm.DB
}

func (t *pgTx) CreateProperty(ctx context.Context, property *domain.Property) error {
	row := toPropertyRow(property)
	result := t.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to create property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPropertyAlreadyExists
	}
	return nil
}

func (t *pgTx) LockProperty(ctx context.Context, address domain.Address) (*domain.Property, error) {
	var row schema.Property
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("address = ?", address.String()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to lock property: %w", err)
	}
	return fromPropertyRow(&row)
}

func (t *pgTx) SaveProperty(ctx context.Context, property *domain.Property) error {
	row := toPropertyRow(property)
	err := t.db.WithContext(ctx).
		Model(&schema.Property{}).
		Where("address = ?", row.Address).
		Updates(map[string]interface{}{
			"total_shares":     row.TotalShares,
			"available_shares": row.AvailableShares,
			"rent_pool":        row.RentPool,
			"is_listed":        row.IsListed,
			"share_price":      row.SharePrice,
			"updated_at":       gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}
	return nil
}

func (t *pgTx) CreateShareUnit(ctx context.Context, unit *domain.ShareUnit) error {
	row := toShareUnitRow(unit)
	result := t.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to create share unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrShareUnitAlreadyExists
	}
	return nil
}

func (t *pgTx) LockShareUnit(ctx context.Context, id domain.Address) (*domain.ShareUnit, error) {
	var row schema.ShareUnit
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id.String()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShareUnitNotFound
		}
		return nil, fmt.Errorf("failed to lock share unit: %w", err)
	}
	return fromShareUnitRow(&row)
}

func (t *pgTx) SaveShareUnit(ctx context.Context, unit *domain.ShareUnit) error {
	err := t.db.WithContext(ctx).
		Model(&schema.ShareUnit{}).
		Where("id = ?", unit.ID.String()).
		Updates(map[string]interface{}{
			"supply":     formatAmount(unit.Supply),
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to save share unit: %w", err)
	}
	return nil
}

func (t *pgTx) CreditShares(ctx context.Context, unitID, owner domain.Address, amount uint64) (uint64, error) {
	seed := schema.ShareBalance{
		UnitID:       unitID.String(),
		OwnerAddress: owner.String(),
		Quantity:     "0",
	}
	if err := t.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, fmt.Errorf("failed to create share balance: %w", err)
	}

	var row schema.ShareBalance
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("unit_id = ? AND owner_address = ?", seed.UnitID, seed.OwnerAddress).
		First(&row).Error
	if err != nil {
		return 0, fmt.Errorf("failed to lock share balance: %w", err)
	}

	current, err := parseAmount("quantity", row.Quantity)
	if err != nil {
		return 0, err
	}
	next, err := domain.CheckedAdd(current, amount)
	if err != nil {
		return 0, err
	}

	err = t.db.WithContext(ctx).
		Model(&schema.ShareBalance{}).
		Where("id = ?", row.ID).
		Updates(map[string]interface{}{
			"quantity":   formatAmount(next),
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to update share balance: %w", err)
	}

	return next, nil
}

func (t *pgTx) CreditCurrency(ctx context.Context, owner domain.Address, amount uint64) (uint64, error) {
	balances, err := t.lockCurrencyBalances(ctx, owner)
	if err != nil {
		return 0, err
	}

	next, err := domain.CheckedAdd(balances[owner], amount)
	if err != nil {
		return 0, err
	}
	if err := t.setCurrencyBalance(ctx, owner, next); err != nil {
		return 0, err
	}
	return next, nil
}

func (t *pgTx) TransferCurrency(ctx context.Context, from, to domain.Address, amount uint64) error {
	balances, err := t.lockCurrencyBalances(ctx, from, to)
	if err != nil {
		return err
	}

	if balances[from] < amount {
		return domain.ErrInsufficientFunds
	}
	if from == to {
		return nil
	}

	credited, err := domain.CheckedAdd(balances[to], amount)
	if err != nil {
		return err
	}
	if err := t.setCurrencyBalance(ctx, from, balances[from]-amount); err != nil {
		return err
	}
	return t.setCurrencyBalance(ctx, to, credited)
}

// lockCurrencyBalances creates missing balance rows and locks all of them in address order
func (t *pgTx) lockCurrencyBalances(ctx context.Context, owners ...domain.Address) (map[domain.Address]uint64, error) {
	keys := make([]string, 0, len(owners))
	seen := make(map[string]bool, len(owners))
	for _, owner := range owners {
		key := owner.String()
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	seeds := make([]schema.CurrencyBalance, 0, len(keys))
	for _, key := range keys {
		seeds = append(seeds, schema.CurrencyBalance{OwnerAddress: key, Amount: "0"})
	}
	if err := t.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&seeds).Error; err != nil {
		return nil, fmt.Errorf("failed to create currency balances: %w", err)
	}

	var rows []schema.CurrencyBalance
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_address IN ?", keys).
		Order("owner_address ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock currency balances: %w", err)
	}

	balances := make(map[domain.Address]uint64, len(rows))
	for _, row := range rows {
		owner, err := domain.ParseAddress(row.OwnerAddress)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount("amount", row.Amount)
		if err != nil {
			return nil, err
		}
		balances[owner] = amount
	}
	return balances, nil
}

func (t *pgTx) setCurrencyBalance(ctx context.Context, owner domain.Address, amount uint64) error {
	err := t.db.WithContext(ctx).
		Model(&schema.CurrencyBalance{}).
		Where("owner_address = ?", owner.String()).
		Updates(map[string]interface{}{
			"amount":     formatAmount(amount),
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update currency balance: %w", err)
	}
	return nil
}

func (t *pgTx) AppendLedgerEvent(ctx context.Context, event *domain.LedgerEvent) error {
	if err := t.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", outboxLockKey).Error; err != nil {
		return fmt.Errorf("failed to lock outbox: %w", err)
	}

	row := toLedgerEventRow(event)
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append ledger event: %w", err)
	}
	event.Sequence = uint64(row.Sequence) //nolint:gosec,G115
	return nil
}
