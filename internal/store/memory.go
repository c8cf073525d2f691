package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

var errNotLocked = errors.New("record was not locked in this transaction")

type shareKey struct {
	unit  domain.Address
	owner domain.Address
}

// memoryStore keeps all state in process. Transactions stage their writes and take
// per-record locks, so operations on different properties run concurrently.
type memoryStore struct {
	mu         sync.RWMutex
	locks      *keyedMutex
	properties map[domain.Address]domain.Property
	units      map[domain.Address]domain.ShareUnit
	shares     map[shareKey]uint64
	currency   map[domain.Address]uint64
	events     []domain.LedgerEvent
	cursors    map[string]uint64
}

// NewMemoryStore creates an in-process store, used for local development and tests
func NewMemoryStore() Store {
	return &memoryStore{
		locks:      newKeyedMutex(),
		properties: make(map[domain.Address]domain.Property),
		units:      make(map[domain.Address]domain.ShareUnit),
		shares:     make(map[shareKey]uint64),
		currency:   make(map[domain.Address]uint64),
		cursors:    make(map[string]uint64),
	}
}

func (s *memoryStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	tx := &memoryTx{
		store:      s,
		held:       make(map[string]bool),
		properties: make(map[domain.Address]domain.Property),
		units:      make(map[domain.Address]domain.ShareUnit),
		shares:     make(map[shareKey]uint64),
		currency:   make(map[domain.Address]uint64),
	}
	defer tx.release()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}

	s.commit(tx)
	return nil
}

func (s *memoryStore) commit(tx *memoryTx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range tx.properties {
		s.properties[k] = v
	}
	for k, v := range tx.units {
		s.units[k] = v
	}
	for k, v := range tx.shares {
		s.shares[k] = v
	}
	for k, v := range tx.currency {
		s.currency[k] = v
	}
	for _, e := range tx.events {
		e.Sequence = uint64(len(s.events)) + 1
		s.events = append(s.events, *e)
	}
}

func (s *memoryStore) GetProperty(ctx context.Context, address domain.Address) (*domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[address]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (s *memoryStore) GetProperties(ctx context.Context, filter PropertyQueryFilter) ([]*domain.Property, uint64, error) {
	s.mu.RLock()
	matched := make([]*domain.Property, 0)
	for _, p := range s.properties {
		if filter.Owner != nil && p.Owner != *filter.Owner {
			continue
		}
		if filter.Listed != nil && p.IsListed != *filter.Listed {
			continue
		}
		p := p
		matched = append(matched, &p)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].Address.String() < matched[j].Address.String()
	})

	total := uint64(len(matched))
	if filter.Offset >= total {
		return []*domain.Property{}, total, nil
	}
	end := min(filter.Offset+uint64(normalizeLimit(filter.Limit)), total) //nolint:gosec,G115
	return matched[filter.Offset:end], total, nil
}

func (s *memoryStore) GetShareUnit(ctx context.Context, id domain.Address) (*domain.ShareUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.units[id]
	if !ok {
		return nil, domain.ErrShareUnitNotFound
	}
	return &u, nil
}

func (s *memoryStore) GetShareBalance(ctx context.Context, unitID, owner domain.Address) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shares[shareKey{unit: unitID, owner: owner}], nil
}

func (s *memoryStore) GetCurrencyBalance(ctx context.Context, owner domain.Address) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency[owner], nil
}

func (s *memoryStore) GetLedgerEvents(ctx context.Context, filter LedgerEventQueryFilter) ([]*domain.LedgerEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := normalizeLimit(filter.Limit)
	events := make([]*domain.LedgerEvent, 0)
	for i := filter.After; i < uint64(len(s.events)) && len(events) < limit; i++ {
		e := s.events[i]
		if filter.Property != nil && e.Property != *filter.Property {
			continue
		}
		events = append(events, &e)
	}
	return events, nil
}

func (s *memoryStore) GetRelayCursor(ctx context.Context, name string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursors[name], nil
}

func (s *memoryStore) SetRelayCursor(ctx context.Context, name string, sequence uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors[name] = sequence
	return nil
}

// memoryTx stages writes until commit
type memoryTx struct {
	store *memoryStore
	held  map[string]bool
	order []string

	properties map[domain.Address]domain.Property
	units      map[domain.Address]domain.ShareUnit
	shares     map[shareKey]uint64
	currency   map[domain.Address]uint64
	events     []*domain.LedgerEvent
}

func (t *memoryTx) lock(keys ...string) {
	pending := make([]string, 0, len(keys))
	for _, key := range keys {
		if !t.held[key] {
			pending = append(pending, key)
		}
	}
	sort.Strings(pending)
	for _, key := range pending {
		if t.held[key] {
			continue
		}
		t.store.locks.Lock(key)
		t.held[key] = true
		t.order = append(t.order, key)
	}
}

func (t *memoryTx) release() {
	for i := len(t.order) - 1; i >= 0; i-- {
		t.store.locks.Unlock(t.order[i])
	}
	t.order = nil
	t.held = map[string]bool{}
}

func propertyLockKey(address domain.Address) string {
	return "property:" + address.String()
}

func unitLockKey(id domain.Address) string {
	return "unit:" + id.String()
}

func shareLockKey(k shareKey) string {
	return "shares:" + k.unit.String() + ":" + k.owner.String()
}

func currencyLockKey(owner domain.Address) string {
	return "currency:" + owner.String()
}

func (t *memoryTx) property(address domain.Address) (domain.Property, bool) {
	if p, ok := t.properties[address]; ok {
		return p, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	p, ok := t.store.properties[address]
	return p, ok
}

func (t *memoryTx) unit(id domain.Address) (domain.ShareUnit, bool) {
	if u, ok := t.units[id]; ok {
		return u, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	u, ok := t.store.units[id]
	return u, ok
}

func (t *memoryTx) shareBalance(k shareKey) uint64 {
	if v, ok := t.shares[k]; ok {
		return v
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.store.shares[k]
}

func (t *memoryTx) currencyBalance(owner domain.Address) uint64 {
	if v, ok := t.currency[owner]; ok {
		return v
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.store.currency[owner]
}

func (t *memoryTx) CreateProperty(ctx context.Context, property *domain.Property) error {
	t.lock(propertyLockKey(property.Address))
	if _, exists := t.property(property.Address); exists {
		return domain.ErrPropertyAlreadyExists
	}
	t.properties[property.Address] = *property
	return nil
}

func (t *memoryTx) LockProperty(ctx context.Context, address domain.Address) (*domain.Property, error) {
	t.lock(propertyLockKey(address))
	p, ok := t.property(address)
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (t *memoryTx) SaveProperty(ctx context.Context, property *domain.Property) error {
	if !t.held[propertyLockKey(property.Address)] {
		return errNotLocked
	}
	t.properties[property.Address] = *property
	return nil
}

func (t *memoryTx) CreateShareUnit(ctx context.Context, unit *domain.ShareUnit) error {
	t.lock(unitLockKey(unit.ID))
	if _, exists := t.unit(unit.ID); exists {
		return domain.ErrShareUnitAlreadyExists
	}
	t.units[unit.ID] = *unit
	return nil
}

func (t *memoryTx) LockShareUnit(ctx context.Context, id domain.Address) (*domain.ShareUnit, error) {
	t.lock(unitLockKey(id))
	u, ok := t.unit(id)
	if !ok {
		return nil, domain.ErrShareUnitNotFound
	}
	return &u, nil
}

func (t *memoryTx) SaveShareUnit(ctx context.Context, unit *domain.ShareUnit) error {
	if !t.held[unitLockKey(unit.ID)] {
		return errNotLocked
	}
	t.units[unit.ID] = *unit
	return nil
}

func (t *memoryTx) CreditShares(ctx context.Context, unitID, owner domain.Address, amount uint64) (uint64, error) {
	k := shareKey{unit: unitID, owner: owner}
	t.lock(shareLockKey(k))
	next, err := domain.CheckedAdd(t.shareBalance(k), amount)
	if err != nil {
		return 0, err
	}
	t.shares[k] = next
	return next, nil
}

func (t *memoryTx) CreditCurrency(ctx context.Context, owner domain.Address, amount uint64) (uint64, error) {
	t.lock(currencyLockKey(owner))
	next, err := domain.CheckedAdd(t.currencyBalance(owner), amount)
	if err != nil {
		return 0, err
	}
	t.currency[owner] = next
	return next, nil
}

func (t *memoryTx) TransferCurrency(ctx context.Context, from, to domain.Address, amount uint64) error {
	t.lock(currencyLockKey(from), currencyLockKey(to))

	fromBalance := t.currencyBalance(from)
	if fromBalance < amount {
		return domain.ErrInsufficientFunds
	}
	if from == to {
		return nil
	}

	credited, err := domain.CheckedAdd(t.currencyBalance(to), amount)
	if err != nil {
		return err
	}
	t.currency[from] = fromBalance - amount
	t.currency[to] = credited
	return nil
}

func (t *memoryTx) AppendLedgerEvent(ctx context.Context, event *domain.LedgerEvent) error {
	t.events = append(t.events, event)
	return nil
}

// keyedMutex is a set of mutexes created on demand and dropped when unused
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
}

func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		return
	}
	m.refs--
	if m.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	m.Unlock()
}
