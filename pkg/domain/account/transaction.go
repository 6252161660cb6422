package account

import (
	"fmt"
	"time"

	"github.com/amirasaad/bankledger/pkg/money"
	"github.com/google/uuid"
)

// Kind identifies the type of a transaction record.
type Kind string

// Transaction kinds. The values double as the display label.
const (
	KindAccountCreation Kind = "ACCOUNT CREATION"
	KindDeposit         Kind = "DEPOSIT"
	KindWithdrawal      Kind = "WITHDRAWAL"
)

// Transaction is an immutable entry in an account's history. Exactly one is
// appended per successful mutating operation and none is ever removed.
// Amounts are signed: credits positive, debits negative.
type Transaction struct {
	ID          uuid.UUID
	Kind        Kind
	Amount      money.Money
	CreatedAt   time.Time
	Description string
}

func newTransaction(kind Kind, amount money.Money, description string) Transaction {
	return Transaction{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      amount,
		CreatedAt:   time.Now(),
		Description: description,
	}
}

// String renders the record as "[yyyy-MM-dd HH:mm:ss] KIND: $amount - description".
func (t Transaction) String() string {
	return fmt.Sprintf("[%s] %s: $%s - %s",
		t.CreatedAt.Format("2006-01-02 15:04:05"),
		t.Kind, t.Amount, t.Description)
}
