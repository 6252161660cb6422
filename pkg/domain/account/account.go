// Package account defines the Account aggregate and its Transaction records.
//
// Account owns its balance and an append-only transaction log and enforces
// the per-account invariants:
//   - the balance never drops below MinBalance after a successful operation;
//   - holder names contain only letters, spaces, hyphens and apostrophes;
//   - the history always starts with the creation record and is never
//     reordered or truncated;
//   - the account number is immutable after construction.
//
// All state changes are serialized by a mutex owned by the aggregate, so
// concurrent deposits and withdrawals on the same account cannot interleave
// their read-modify-write sequences.
package account

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/amirasaad/bankledger/pkg/money"
)

// MinBalance is the floor no account balance may cross.
var MinBalance = money.FromCents(50000) // $500.00

var nameRe = regexp.MustCompile(`^[A-Za-z \-']+$`)

// Account represents a single bank account.
type Account struct {
	number    int64
	firstName string
	lastName  string

	mu           sync.Mutex
	balance      money.Money
	transactions []Transaction
}

// New creates a fresh account with a ledger-assigned number. The initial
// balance must be at least MinBalance; names must match the holder-name
// format. On success the history contains the creation record.
func New(number int64, firstName, lastName string, initial money.Money) (*Account, error) {
	return newAccount(number, firstName, lastName, initial, "Initial deposit")
}

// NewFromData reconstructs an account from its persisted fields, preserving
// its prior identity. Used only while restoring from storage; the same
// validation applies, so corrupt records cannot re-enter the ledger.
func NewFromData(number int64, firstName, lastName string, balance money.Money) (*Account, error) {
	return newAccount(number, firstName, lastName, balance, "Loaded from file")
}

func newAccount(number int64, firstName, lastName string, balance money.Money, description string) (*Account, error) {
	if err := validateName(firstName); err != nil {
		return nil, err
	}
	if err := validateName(lastName); err != nil {
		return nil, err
	}
	if balance.LessThan(MinBalance) {
		return nil, fmt.Errorf("%w: initial balance must be at least $%s", ErrInvalidAmount, MinBalance)
	}
	a := &Account{
		number:    number,
		firstName: firstName,
		lastName:  lastName,
		balance:   balance,
	}
	a.transactions = append(a.transactions, newTransaction(KindAccountCreation, balance, description))
	return a, nil
}

func validateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Number returns the immutable account number.
func (a *Account) Number() int64 {
	return a.number
}

// FirstName returns the holder's first name.
func (a *Account) FirstName() string {
	return a.firstName
}

// LastName returns the holder's last name.
func (a *Account) LastName() string {
	return a.lastName
}

// Balance returns a snapshot of the current balance.
func (a *Account) Balance() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit credits the account. The amount must be strictly positive.
// Either the balance changes and exactly one Deposit record is appended, or
// the call fails with no observable change.
func (a *Account) Deposit(amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be positive", ErrInvalidAmount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, newTransaction(KindDeposit, amount, "Deposit to account"))
	return nil
}

// Withdraw debits the account. The amount must be strictly positive and must
// leave at least MinBalance behind, otherwise ErrInsufficientFunds. The
// appended Withdrawal record carries the negated amount.
func (a *Account) Withdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal amount must be positive", ErrInvalidAmount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.Sub(amount).LessThan(MinBalance) {
		return fmt.Errorf("%w: minimum balance must be $%s", ErrInsufficientFunds, MinBalance)
	}
	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, newTransaction(KindWithdrawal, amount.Neg(), "Withdrawal from account"))
	return nil
}

// Transactions returns a copy of the history, oldest first. Callers never
// receive a mutable handle to the internal log.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// String renders the account summary used by the front ends.
func (a *Account) String() string {
	return fmt.Sprintf("Account Number: %d\nName: %s %s\nBalance: $%s",
		a.number, a.firstName, a.lastName, a.Balance())
}
