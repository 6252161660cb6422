// Package ledger implements the Bank registry: the in-memory collection of
// active accounts, monotonic account numbering, and persistence
// orchestration through a Store collaborator.
//
// A single coarse mutex serializes every mutating operation together with
// its persistence side effect, so the persisted file always reflects the
// state after exactly one completed operation. Each Account additionally
// guards its own balance, so relaxing the ledger lock cannot corrupt a
// single account.
package ledger

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/amirasaad/bankledger/pkg/domain/account"
	"github.com/amirasaad/bankledger/pkg/money"
)

// Record is the persisted shape of an account: the four fields that survive
// a restart. Transaction history is deliberately not persisted.
type Record struct {
	Number    int64
	FirstName string
	LastName  string
	Balance   money.Money
}

// Store loads and saves the full set of account records. Save overwrites the
// previous state in full; there is no incremental update.
type Store interface {
	Load() ([]Record, error)
	Save([]Record) error
}

// Ledger owns the registry of active accounts. One instance per process.
type Ledger struct {
	mu       sync.Mutex
	accounts map[int64]*account.Account
	next     int64 // strictly greater than every number ever issued

	store  Store
	logger *slog.Logger
}

// New creates an empty ledger backed by the given store. Call Load before
// serving requests to restore persisted accounts.
func New(store Store, logger *slog.Logger) *Ledger {
	return &Ledger{
		accounts: make(map[int64]*account.Account),
		store:    store,
		logger:   logger,
	}
}

// Load restores persisted accounts. Records failing domain validation are
// skipped and logged; a bad record never aborts startup. The number counter
// is seeded with the highest restored account number so closed or skipped
// numbers are never reused.
func (l *Ledger) Load() error {
	records, err := l.store.Load()
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	var maxNumber int64
	for _, r := range records {
		a, err := account.NewFromData(r.Number, r.FirstName, r.LastName, r.Balance)
		if err != nil {
			l.logger.Warn("skipping invalid account record",
				"number", r.Number, "error", err)
			continue
		}
		l.accounts[a.Number()] = a
		if a.Number() > maxNumber {
			maxNumber = a.Number()
		}
	}
	l.next = maxNumber
	l.logger.Info("accounts restored", "count", len(l.accounts), "next_number", l.next+1)
	return nil
}

// Open creates a new account with a freshly assigned number, registers it
// and checkpoints the full state. On validation failure the registry and
// the number counter are untouched.
func (l *Ledger) Open(firstName, lastName string, initial money.Money) (*account.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := account.New(l.next+1, firstName, lastName, initial)
	if err != nil {
		return nil, err
	}
	l.next++
	l.accounts[a.Number()] = a
	l.checkpoint()
	l.logger.Info("account opened", "number", a.Number())
	return a, nil
}

// Account resolves an account by number.
func (l *Ledger) Account(number int64) (*account.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lookup(number)
}

func (l *Ledger) lookup(number int64) (*account.Account, error) {
	a, ok := l.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", account.ErrAccountNotFound, number)
	}
	return a, nil
}

// Deposit credits the given account and checkpoints on success.
func (l *Ledger) Deposit(number int64, amount money.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.lookup(number)
	if err != nil {
		return err
	}
	if err := a.Deposit(amount); err != nil {
		return err
	}
	l.checkpoint()
	return nil
}

// Withdraw debits the given account and checkpoints on success.
func (l *Ledger) Withdraw(number int64, amount money.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.lookup(number)
	if err != nil {
		return err
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	l.checkpoint()
	return nil
}

// Close removes the account from the registry and checkpoints. The evicted
// account keeps its balance and history for any caller still holding a
// reference, but it is gone from lookups from this point on. Its number is
// never reissued.
func (l *Ledger) Close(number int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.lookup(number); err != nil {
		return err
	}
	delete(l.accounts, number)
	l.checkpoint()
	l.logger.Info("account closed", "number", number)
	return nil
}

// Accounts returns all live accounts sorted by number. Ordering is for
// stable display only.
func (l *Ledger) Accounts() []*account.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*account.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out
}

// checkpoint writes the full state of every live account through the store.
// A write failure leaves the in-memory state authoritative: it is logged and
// swallowed, so the on-disk copy may go stale. Known weak point inherited
// from the original design.
//
// Callers must hold l.mu.
func (l *Ledger) checkpoint() {
	records := make([]Record, 0, len(l.accounts))
	for _, a := range l.accounts {
		records = append(records, Record{
			Number:    a.Number(),
			FirstName: a.FirstName(),
			LastName:  a.LastName(),
			Balance:   a.Balance(),
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Number < records[j].Number })
	if err := l.store.Save(records); err != nil {
		l.logger.Error("saving accounts failed", "error", err)
	}
}
