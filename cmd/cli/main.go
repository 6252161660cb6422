// Command cli operates on the account data file directly: every mutating
// command checkpoints the full state before exiting, the same way the
// server does after each request.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/amirasaad/bankledger/infra/store"
	"github.com/amirasaad/bankledger/pkg/config"
	"github.com/amirasaad/bankledger/pkg/ledger"
	"github.com/amirasaad/bankledger/pkg/money"
	"github.com/fatih/color"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  open <first_name> <last_name> <initial_balance>")
	fmt.Println("  balance <account_number>")
	fmt.Println("  deposit <account_number> <amount>")
	fmt.Println("  withdraw <account_number> <amount>")
	fmt.Println("  close <account_number>")
	fmt.Println("  list")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	// Keep the terminal output clean; config and store chatter goes nowhere.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fail("loading configuration: %v", err)
	}
	l := ledger.New(store.NewFileStore(cfg.Data.File, store.NewKeyCodec(cfg.Data.CodecKey), logger), logger)
	if err := l.Load(); err != nil {
		fail("restoring accounts: %v", err)
	}

	if err := dispatch(l, os.Args[1], os.Args[2:]); err != nil {
		fail("%v", err)
	}
}

func fail(format string, args ...any) {
	color.Red("Error: "+format, args...)
	os.Exit(1)
}

func dispatch(l *ledger.Ledger, cmd string, args []string) error {
	switch cmd {
	case "open":
		return open(l, args)
	case "balance":
		return balance(l, args)
	case "deposit":
		return mutate(l, args, "Deposited $%s into account %d", l.Deposit)
	case "withdraw":
		return mutate(l, args, "Withdrew $%s from account %d", l.Withdraw)
	case "close":
		return closeAccount(l, args)
	case "list":
		return list(l)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func open(l *ledger.Ledger, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: open <first_name> <last_name> <initial_balance>")
	}
	initial, err := parseAmount(args[2])
	if err != nil {
		return err
	}
	a, err := l.Open(args[0], args[1], initial)
	if err != nil {
		return err
	}
	color.Green("Account created successfully!")
	fmt.Println(a)
	return nil
}

func balance(l *ledger.Ledger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: balance <account_number>")
	}
	number, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	a, err := l.Account(number)
	if err != nil {
		return err
	}
	fmt.Println(a)
	fmt.Println()
	fmt.Println("Transaction History:")
	for _, t := range a.Transactions() {
		fmt.Println(t)
	}
	return nil
}

func mutate(l *ledger.Ledger, args []string, okFormat string, op func(int64, money.Money) error) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: <account_number> <amount>")
	}
	number, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	if err := op(number, amount); err != nil {
		return err
	}
	color.Green(okFormat, amount, number)
	return nil
}

func closeAccount(l *ledger.Ledger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: close <account_number>")
	}
	number, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	if err := l.Close(number); err != nil {
		return err
	}
	color.Green("Account %d closed successfully!", number)
	return nil
}

func list(l *ledger.Ledger) error {
	accounts := l.Accounts()
	if len(accounts) == 0 {
		fmt.Println("No accounts.")
		return nil
	}
	for _, a := range accounts {
		fmt.Println(a)
		fmt.Println()
	}
	return nil
}

func parseNumber(s string) (int64, error) {
	number, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account number %q", s)
	}
	return number, nil
}

func parseAmount(s string) (money.Money, error) {
	m, err := money.Parse(s)
	if err != nil {
		return money.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return m, nil
}
