package domain

import (
	"errors"
	"fmt"

	"github.com/api-sage/retail-ledger/src/internal/commons"
)

var ErrInvalidAmount = errors.New("Invalid amount")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrOverdraftLimitExceeded = errors.New("Overdraft limit exceeded")
var ErrWithdrawalCountExceeded = errors.New("Maximum number of withdrawals reached")

var ErrClientNotFound = fmt.Errorf("client: %w", commons.ErrRecordNotFound)
var ErrAccountNotFound = fmt.Errorf("account: %w", commons.ErrRecordNotFound)
var ErrDuplicateClient = fmt.Errorf("client with this national id: %w", commons.ErrDuplicateRecord)

// IsRejection reports whether err is a business-rule rejection of a movement,
// as opposed to a lookup or infrastructure failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrOverdraftLimitExceeded) ||
		errors.Is(err, ErrWithdrawalCountExceeded)
}
