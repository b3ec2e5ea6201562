package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	NationalID string `json:"nationalId"`
}

func (r OpenAccountRequest) Validate() error {
	if strings.TrimSpace(r.NationalID) == "" {
		return errors.New("nationalId is required")
	}
	return nil
}

type AccountResponse struct {
	AccountNumber  int64            `json:"accountNumber"`
	Branch         string           `json:"branch"`
	Kind           string           `json:"kind"`
	OwnerID        string           `json:"ownerId"`
	HolderName     string           `json:"holderName"`
	Balance        decimal.Decimal  `json:"balance"`
	OverdraftLimit *decimal.Decimal `json:"overdraftLimit,omitempty"`
	MaxWithdrawals int              `json:"maxWithdrawals,omitempty"`
}

// MovementRequest carries a deposit or withdrawal. AccountNumber 0 selects
// the client's first account.
type MovementRequest struct {
	NationalID    string          `json:"nationalId"`
	AccountNumber int64           `json:"accountNumber,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r MovementRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.NationalID) == "" {
		errs = append(errs, "nationalId is required")
	}
	if r.AccountNumber < 0 {
		errs = append(errs, "accountNumber cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type MovementResponse struct {
	EntryID       string          `json:"entryId"`
	AccountNumber int64           `json:"accountNumber"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	RecordedAt    string          `json:"recordedAt"`
}

type StatementEntry struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	RecordedAt string          `json:"recordedAt"`
}

type StatementResponse struct {
	AccountNumber int64            `json:"accountNumber"`
	Branch        string           `json:"branch"`
	HolderName    string           `json:"holderName"`
	Entries       []StatementEntry `json:"entries"`
	Balance       decimal.Decimal  `json:"balance"`
}
