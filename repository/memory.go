package repository

import (
	"context"
	"sync"
	"time"

	"lineblocs.com/ledger/models"
)

// MemoryStore is an in-process AccountRepository and CallRepository. Each account
// has its own mutex standing in for the row lock; writes are staged and only
// applied when the unit of work returns without error.
type MemoryStore struct {
	mu       sync.RWMutex
	locks    map[int]*sync.Mutex
	accounts map[int]models.Account
	calls    map[string]models.CallBillingRecord
	touched  map[string]time.Time
	numbers  map[int]models.NumberSubscription
	entries  []models.LedgerEntry

	// FailInserts, when set, is returned by every InsertLedgerEntry call.
	FailInserts error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locks:    make(map[int]*sync.Mutex),
		accounts: make(map[int]models.Account),
		calls:    make(map[string]models.CallBillingRecord),
		touched:  make(map[string]time.Time),
		numbers:  make(map[int]models.NumberSubscription),
	}
}

func (s *MemoryStore) PutAccount(account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Id] = account
}

func (s *MemoryStore) PutCallRecord(record models.CallBillingRecord, updatedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[record.CallReference] = record
	s.touched[record.CallReference] = updatedAt
}

func (s *MemoryStore) PutSubscription(sub models.NumberSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.numbers[sub.Id] = sub
}

func (s *MemoryStore) Account(id int) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok
}

func (s *MemoryStore) CallRecord(callReference string) (models.CallBillingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.calls[callReference]
	return r, ok
}

func (s *MemoryStore) Subscription(id int) (models.NumberSubscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.numbers[id]
	return sub, ok
}

func (s *MemoryStore) LedgerEntries() []models.LedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LedgerEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *MemoryStore) accountLock(id int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

func (s *MemoryStore) WithAccountLock(ctx context.Context, accountID int, fn func(tx AccountTx) error) error {
	lock := s.accountLock(accountID)
	lock.Lock()
	defer lock.Unlock()

	account, ok := s.Account(accountID)
	if !ok {
		return ErrAccountNotFound
	}

	tx := &memoryTx{
		store:   s,
		account: account,
		calls:   make(map[string]models.CallBillingRecord),
		numbers: make(map[int]models.NumberSubscription),
	}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.savedAccount != nil {
		s.accounts[accountID] = *tx.savedAccount
	}
	for ref, record := range tx.calls {
		s.calls[ref] = record
		s.touched[ref] = time.Now()
	}
	for id, sub := range tx.numbers {
		s.numbers[id] = sub
	}
	s.entries = append(s.entries, tx.entries...)
	return nil
}

func (s *MemoryStore) GetCallRecord(_ context.Context, callReference string) (*models.CallBillingRecord, error) {
	record, ok := s.CallRecord(callReference)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &record, nil
}

func (s *MemoryStore) ListUnbilledCompletedCalls(_ context.Context, before time.Time) ([]models.CallBillingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []models.CallBillingRecord
	for ref, record := range s.calls {
		if record.IsBilled || record.Status != models.CallStatusCompleted {
			continue
		}
		if s.touched[ref].After(before) {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

type memoryTx struct {
	store        *MemoryStore
	account      models.Account
	savedAccount *models.Account
	calls        map[string]models.CallBillingRecord
	numbers      map[int]models.NumberSubscription
	entries      []models.LedgerEntry
}

func (t *memoryTx) Account() *models.Account {
	return &t.account
}

func (t *memoryTx) SaveAccount() error {
	saved := t.account
	t.savedAccount = &saved
	return nil
}

func (t *memoryTx) LockCallRecord(callReference string) (*models.CallBillingRecord, error) {
	record, ok := t.calls[callReference]
	if !ok {
		record, ok = t.store.CallRecord(callReference)
	}
	if !ok || record.AccountId != t.account.Id {
		return nil, ErrRecordNotFound
	}
	return &record, nil
}

func (t *memoryTx) SaveCallRecord(record *models.CallBillingRecord) error {
	t.calls[record.CallReference] = *record
	return nil
}

func (t *memoryTx) LockSubscription(subscriptionID int) (*models.NumberSubscription, error) {
	sub, ok := t.numbers[subscriptionID]
	if !ok {
		sub, ok = t.store.Subscription(subscriptionID)
	}
	if !ok || sub.AccountId != t.account.Id {
		return nil, ErrSubscriptionNotFound
	}
	return &sub, nil
}

func (t *memoryTx) SaveSubscription(sub *models.NumberSubscription) error {
	t.numbers[sub.Id] = *sub
	return nil
}

func (t *memoryTx) HasLedgerEntry(source models.LedgerSource, reference string) (bool, error) {
	for _, e := range t.entries {
		if e.Source == source && e.Reference == reference {
			return true, nil
		}
	}
	for _, e := range t.store.LedgerEntries() {
		if e.Source == source && e.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

func (t *memoryTx) InsertLedgerEntry(entry *models.LedgerEntry) error {
	if t.store.FailInserts != nil {
		return t.store.FailInserts
	}
	t.entries = append(t.entries, *entry)
	return nil
}
