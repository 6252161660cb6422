package account_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/amirasaad/bankledger/pkg/domain/account"
	"github.com/amirasaad/bankledger/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	a, err := account.New(1, "Jane", "Doe", money.Must(1000.00))
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.Number())
	assert.Equal(t, "Jane", a.FirstName())
	assert.Equal(t, "Doe", a.LastName())
	assert.Equal(t, money.Must(1000.00), a.Balance())

	history := a.Transactions()
	require.Len(t, history, 1)
	assert.Equal(t, account.KindAccountCreation, history[0].Kind)
	assert.Equal(t, money.Must(1000.00), history[0].Amount)
	assert.Equal(t, "Initial deposit", history[0].Description)
	assert.False(t, history[0].CreatedAt.IsZero())
	assert.NotEmpty(t, history[0].ID)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		first   string
		last    string
		initial money.Money
		wantErr error
	}{
		{"below minimum balance", "Jane", "Doe", money.Must(499.99), account.ErrInvalidAmount},
		{"zero balance", "Jane", "Doe", money.Zero, account.ErrInvalidAmount},
		{"empty first name", "", "Doe", money.Must(1000), account.ErrInvalidName},
		{"digits in name", "J4ne", "Doe", money.Must(1000), account.ErrInvalidName},
		{"symbols in last name", "Jane", "Doe!", money.Must(1000), account.ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := account.New(1, tt.first, tt.last, tt.initial)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAcceptsCompoundNames(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"Mary Jane", "O'Brien", "Smith-Jones"} {
		_, err := account.New(1, name, name, money.Must(1000))
		assert.NoError(t, err, "name %q should be valid", name)
	}
}

func TestNewFromData(t *testing.T) {
	t.Parallel()
	a, err := account.NewFromData(42, "John", "Smith", money.Must(750.25))
	require.NoError(t, err)

	assert.Equal(t, int64(42), a.Number())
	assert.Equal(t, money.Must(750.25), a.Balance())

	history := a.Transactions()
	require.Len(t, history, 1)
	assert.Equal(t, account.KindAccountCreation, history[0].Kind)
	assert.Equal(t, "Loaded from file", history[0].Description)

	_, err = account.NewFromData(43, "John", "Smith", money.Must(100.00))
	assert.ErrorIs(t, err, account.ErrInvalidAmount, "restored balances get the same validation")
}

func TestDeposit(t *testing.T) {
	t.Parallel()
	a, err := account.New(1, "Jane", "Doe", money.Must(1000.00))
	require.NoError(t, err)

	require.NoError(t, a.Deposit(money.Must(200.00)))
	assert.Equal(t, money.Must(1200.00), a.Balance())

	history := a.Transactions()
	require.Len(t, history, 2)
	assert.Equal(t, account.KindDeposit, history[1].Kind)
	assert.Equal(t, money.Must(200.00), history[1].Amount)
	assert.Equal(t, "Deposit to account", history[1].Description)
}

func TestDepositInvalidAmount(t *testing.T) {
	t.Parallel()
	a, err := account.New(1, "Jane", "Doe", money.Must(1000.00))
	require.NoError(t, err)

	for _, amount := range []money.Money{money.Zero, money.Must(-5.00)} {
		err := a.Deposit(amount)
		assert.ErrorIs(t, err, account.ErrInvalidAmount)
	}
	assert.Equal(t, money.Must(1000.00), a.Balance(), "failed deposit must not change the balance")
	assert.Len(t, a.Transactions(), 1, "failed deposit must not append a record")
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	a, err := account.New(1, "Jane", "Doe", money.Must(1200.00))
	require.NoError(t, err)

	require.NoError(t, a.Withdraw(money.Must(500.00)))
	assert.Equal(t, money.Must(700.00), a.Balance())

	history := a.Transactions()
	require.Len(t, history, 2)
	assert.Equal(t, account.KindWithdrawal, history[1].Kind)
	assert.Equal(t, money.Must(-500.00), history[1].Amount, "withdrawal records carry the negated amount")
	assert.Equal(t, "Withdrawal from account", history[1].Description)
}

func TestWithdrawErrors(t *testing.T) {
	t.Parallel()
	a, err := account.New(1, "Jane", "Doe", money.Must(1200.00))
	require.NoError(t, err)

	t.Run("non-positive amount", func(t *testing.T) {
		assert.ErrorIs(t, a.Withdraw(money.Zero), account.ErrInvalidAmount)
		assert.ErrorIs(t, a.Withdraw(money.Must(-1)), account.ErrInvalidAmount)
	})

	t.Run("would breach minimum balance", func(t *testing.T) {
		// 1200 - 900 = 300 < 500
		assert.ErrorIs(t, a.Withdraw(money.Must(900.00)), account.ErrInsufficientFunds)
	})

	t.Run("state unchanged after failures", func(t *testing.T) {
		assert.Equal(t, money.Must(1200.00), a.Balance())
		assert.Len(t, a.Transactions(), 1)
	})

	t.Run("exactly down to the floor succeeds", func(t *testing.T) {
		assert.NoError(t, a.Withdraw(money.Must(700.00)))
		assert.Equal(t, account.MinBalance, a.Balance())
	})
}

func TestTransactionsReturnsCopy(t *testing.T) {
	t.Parallel()
	a, err := account.New(1, "Jane", "Doe", money.Must(1000.00))
	require.NoError(t, err)

	history := a.Transactions()
	history[0].Description = "tampered"

	assert.Equal(t, "Initial deposit", a.Transactions()[0].Description)
}

func TestString(t *testing.T) {
	t.Parallel()
	a, err := account.New(7, "Jane", "Doe", money.Must(1000.00))
	require.NoError(t, err)
	assert.Equal(t, "Account Number: 7\nName: Jane Doe\nBalance: $1000.00", a.String())
}

func TestTransactionString(t *testing.T) {
	t.Parallel()
	a, err := account.New(1, "Jane", "Doe", money.Must(1000.00))
	require.NoError(t, err)
	require.NoError(t, a.Withdraw(money.Must(200.00)))

	tx := a.Transactions()[1]
	want := fmt.Sprintf("[%s] WITHDRAWAL: $-200.00 - Withdrawal from account",
		tx.CreatedAt.Format("2006-01-02 15:04:05"))
	assert.Equal(t, want, tx.String())
}

func TestConcurrentDeposits(t *testing.T) {
	t.Parallel()
	a, err := account.New(1, "Jane", "Doe", money.Must(1000.00))
	require.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			if err := a.Deposit(money.Must(1.00)); err != nil {
				t.Errorf("deposit: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, money.Must(1000.00+n), a.Balance())
	assert.Len(t, a.Transactions(), n+1)
}
