package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction applies one movement to an account and, when the account
// accepts it, records it in the account history.
type Transaction interface {
	Kind() EntryKind
	Amount() decimal.Decimal
	Execute(account Account) (LedgerEntry, error)
}

type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() EntryKind         { return EntryDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.amount }

func (d Deposit) Execute(account Account) (LedgerEntry, error) {
	if err := account.Deposit(d.amount); err != nil {
		return LedgerEntry{}, err
	}

	return account.History().Record(EntryDeposit, d.amount, time.Now().UTC()), nil
}

type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() EntryKind         { return EntryWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.amount }

func (w Withdrawal) Execute(account Account) (LedgerEntry, error) {
	if err := account.Withdraw(w.amount); err != nil {
		return LedgerEntry{}, err
	}

	return account.History().Record(EntryWithdrawal, w.amount, time.Now().UTC()), nil
}

// NewTransaction maps an entry kind onto its transaction variant.
func NewTransaction(kind EntryKind, amount decimal.Decimal) (Transaction, bool) {
	switch kind {
	case EntryDeposit:
		return NewDeposit(amount), true
	case EntryWithdrawal:
		return NewWithdrawal(amount), true
	default:
		return nil, false
	}
}
