package webapi

import (
	"log/slog"
	"strconv"

	"github.com/amirasaad/bankledger/pkg/domain/account"
	"github.com/amirasaad/bankledger/pkg/ledger"
	"github.com/amirasaad/bankledger/pkg/money"
	"github.com/gofiber/fiber/v2"
)

// OpenAccountRequest is the payload for opening a new account.
type OpenAccountRequest struct {
	FirstName      string  `json:"first_name" validate:"required"`
	LastName       string  `json:"last_name" validate:"required"`
	InitialBalance float64 `json:"initial_balance" validate:"required"`
}

// AmountRequest is the payload for deposits and withdrawals.
type AmountRequest struct {
	Amount float64 `json:"amount" validate:"required"`
}

// AccountResponse is the read model returned for an account.
type AccountResponse struct {
	Number    int64   `json:"account_number"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Balance   float64 `json:"balance"`
}

// TransactionResponse is the read model for one history entry.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
	Description string  `json:"description"`
}

func toAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		Number:    a.Number(),
		FirstName: a.FirstName(),
		LastName:  a.LastName(),
		Balance:   a.Balance().Float64(),
	}
}

func toTransactionResponses(ts []account.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		out[i] = TransactionResponse{
			ID:          t.ID.String(),
			Kind:        string(t.Kind),
			Amount:      t.Amount.Float64(),
			CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
			Description: t.Description,
		}
	}
	return out
}

// Routes registers the account endpoints:
//
//   - POST   /accounts                    : open a new account
//   - GET    /accounts                    : list all accounts
//   - GET    /accounts/:number            : account details with history
//   - POST   /accounts/:number/deposit    : deposit funds
//   - POST   /accounts/:number/withdraw   : withdraw funds
//   - DELETE /accounts/:number            : close the account
func Routes(app *fiber.App, l *ledger.Ledger, logger *slog.Logger) {
	app.Post("/accounts", OpenAccount(l, logger))
	app.Get("/accounts", ListAccounts(l))
	app.Get("/accounts/:number", GetAccount(l))
	app.Post("/accounts/:number/deposit", Deposit(l, logger))
	app.Post("/accounts/:number/withdraw", Withdraw(l, logger))
	app.Delete("/accounts/:number", CloseAccount(l, logger))
}

func parseNumber(c *fiber.Ctx) (int64, error) {
	number, err := strconv.ParseInt(c.Params("number"), 10, 64)
	if err != nil {
		return 0, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account number", c.Params("number"))
	}
	return number, nil
}

// OpenAccount returns the handler creating a new account.
func OpenAccount(l *ledger.Ledger, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[OpenAccountRequest](c)
		if input == nil {
			return err
		}
		initial, err := money.New(input.InitialBalance)
		if err != nil {
			return DomainErrorJSON(c, "Invalid initial balance", err)
		}
		a, err := l.Open(input.FirstName, input.LastName, initial)
		if err != nil {
			logger.Warn("open account failed", "error", err)
			return DomainErrorJSON(c, "Failed to open account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account opened", toAccountResponse(a))
	}
}

// ListAccounts returns the handler listing all live accounts.
func ListAccounts(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts := l.Accounts()
		out := make([]AccountResponse, len(accounts))
		for i, a := range accounts {
			out[i] = toAccountResponse(a)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts", out)
	}
}

// GetAccount returns the handler for the balance enquiry: the account
// summary plus its transaction history.
func GetAccount(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := parseNumber(c)
		if err != nil {
			return err
		}
		a, err := l.Account(number)
		if err != nil {
			return DomainErrorJSON(c, "Account not found", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account", fiber.Map{
			"account":      toAccountResponse(a),
			"transactions": toTransactionResponses(a.Transactions()),
		})
	}
}

// Deposit returns the handler crediting an account.
func Deposit(l *ledger.Ledger, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := parseNumber(c)
		if err != nil {
			return err
		}
		input, err := BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.New(input.Amount)
		if err != nil {
			return DomainErrorJSON(c, "Invalid amount", err)
		}
		if err := l.Deposit(number, amount); err != nil {
			logger.Warn("deposit failed", "number", number, "error", err)
			return DomainErrorJSON(c, "Deposit failed", err)
		}
		a, err := l.Account(number)
		if err != nil {
			return DomainErrorJSON(c, "Account not found", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", toAccountResponse(a))
	}
}

// Withdraw returns the handler debiting an account.
func Withdraw(l *ledger.Ledger, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := parseNumber(c)
		if err != nil {
			return err
		}
		input, err := BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.New(input.Amount)
		if err != nil {
			return DomainErrorJSON(c, "Invalid amount", err)
		}
		if err := l.Withdraw(number, amount); err != nil {
			logger.Warn("withdrawal failed", "number", number, "error", err)
			return DomainErrorJSON(c, "Withdrawal failed", err)
		}
		a, err := l.Account(number)
		if err != nil {
			return DomainErrorJSON(c, "Account not found", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", toAccountResponse(a))
	}
}

// CloseAccount returns the handler removing an account from the registry.
func CloseAccount(l *ledger.Ledger, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := parseNumber(c)
		if err != nil {
			return err
		}
		if err := l.Close(number); err != nil {
			logger.Warn("close failed", "number", number, "error", err)
			return DomainErrorJSON(c, "Failed to close account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account closed", nil)
	}
}
