package domain

import "github.com/shopspring/decimal"

const BranchCode = "0001"

const DefaultMaxWithdrawals = 3

var DefaultOverdraftLimit = decimal.NewFromInt(500)

type AccountKind string

const (
	AccountKindBase     AccountKind = "ACCOUNT"
	AccountKindChecking AccountKind = "CHECKING"
)

// Account is the capability set every account variant offers. Only the
// account itself changes its balance; History is appended by transactions.
type Account interface {
	Number() int64
	Branch() string
	OwnerID() string
	Kind() AccountKind
	Balance() decimal.Decimal
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

type BaseAccount struct {
	number  int64
	branch  string
	ownerID string
	balance decimal.Decimal
	history *History
}

var _ Account = (*BaseAccount)(nil)

// OpenAccount builds a new empty account for owner. It does not link the
// account to the owner.
func OpenAccount(owner *Client, number int64) *BaseAccount {
	return &BaseAccount{
		number:  number,
		branch:  BranchCode,
		ownerID: owner.ID,
		balance: decimal.Zero,
		history: NewHistory(),
	}
}

func (a *BaseAccount) Number() int64            { return a.number }
func (a *BaseAccount) Branch() string           { return a.branch }
func (a *BaseAccount) OwnerID() string          { return a.ownerID }
func (a *BaseAccount) Kind() AccountKind        { return AccountKindBase }
func (a *BaseAccount) Balance() decimal.Decimal { return a.balance }
func (a *BaseAccount) History() *History        { return a.history }

func (a *BaseAccount) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

func (a *BaseAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingAccount caps the size of a single withdrawal and the number of
// withdrawals. The count covers the whole history and is never reset.
type CheckingAccount struct {
	*BaseAccount
	overdraftLimit decimal.Decimal
	maxWithdrawals int
}

var _ Account = (*CheckingAccount)(nil)

type CheckingOption func(*CheckingAccount)

func WithOverdraftLimit(limit decimal.Decimal) CheckingOption {
	return func(a *CheckingAccount) {
		a.overdraftLimit = limit
	}
}

func WithMaxWithdrawals(max int) CheckingOption {
	return func(a *CheckingAccount) {
		a.maxWithdrawals = max
	}
}

func OpenCheckingAccount(owner *Client, number int64, opts ...CheckingOption) *CheckingAccount {
	account := &CheckingAccount{
		BaseAccount:    OpenAccount(owner, number),
		overdraftLimit: DefaultOverdraftLimit,
		maxWithdrawals: DefaultMaxWithdrawals,
	}
	for _, opt := range opts {
		opt(account)
	}
	return account
}

func (a *CheckingAccount) Kind() AccountKind               { return AccountKindChecking }
func (a *CheckingAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }
func (a *CheckingAccount) MaxWithdrawals() int             { return a.maxWithdrawals }

func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	withdrawals := a.history.Count(EntryWithdrawal)

	if amount.GreaterThan(a.overdraftLimit) {
		return ErrOverdraftLimitExceeded
	}
	if withdrawals >= a.maxWithdrawals {
		return ErrWithdrawalCountExceeded
	}

	return a.BaseAccount.Withdraw(amount)
}
