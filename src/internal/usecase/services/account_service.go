package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/retail-ledger/src/internal/commons"
	"github.com/api-sage/retail-ledger/src/internal/domain"
	"github.com/api-sage/retail-ledger/src/internal/logger"
	"github.com/api-sage/retail-ledger/src/internal/metrics"
)

var errNoAccount = fmt.Errorf("client has no account: %w", domain.ErrAccountNotFound)

type AccountService struct {
	accountRepo    domain.AccountRepository
	clientRepo     domain.ClientRepository
	metrics        *metrics.Metrics
	overdraftLimit decimal.Decimal
	maxWithdrawals int
}

func NewAccountService(
	accountRepo domain.AccountRepository,
	clientRepo domain.ClientRepository,
	m *metrics.Metrics,
	overdraftLimit decimal.Decimal,
	maxWithdrawals int,
) *AccountService {
	return &AccountService{
		accountRepo:    accountRepo,
		clientRepo:     clientRepo,
		metrics:        m,
		overdraftLimit: overdraftLimit,
		maxWithdrawals: maxWithdrawals,
	}
}

// OpenAccount opens a checking account for an existing client and links it.
func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse](commons.MessageValidationFailed, err.Error()), err
	}

	client, err := s.clientRepo.GetByNationalID(ctx, strings.TrimSpace(req.NationalID))
	if err != nil {
		logger.Error("account service open account client lookup failed", err, nil)
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse](commons.MessageClientNotFound, "account opening cancelled"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	account, err := s.accountRepo.Create(ctx, func(number int64) domain.Account {
		return domain.OpenCheckingAccount(
			&client.Client,
			number,
			domain.WithOverdraftLimit(s.overdraftLimit),
			domain.WithMaxWithdrawals(s.maxWithdrawals),
		)
	})
	if err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"clientId": client.ID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	client.LinkAccount(account)
	s.metrics.AccountOpened()

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": account.Number(),
		"clientId":      client.ID,
	})

	return commons.SuccessResponse("account opened successfully", mapAccountToResponse(account, client.FullName, decimal.Zero)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	response := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		holderName := ""
		if owner, err := s.clientRepo.GetByID(ctx, account.OwnerID()); err == nil {
			holderName = owner.FullName
		}

		var balance decimal.Decimal
		if err := s.accountRepo.WithLock(ctx, account.Number(), func(acc domain.Account) error {
			balance = acc.Balance()
			return nil
		}); err != nil {
			logger.Error("account service list accounts balance read failed", err, logger.Fields{
				"accountNumber": account.Number(),
			})
			return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
		}

		response = append(response, mapAccountToResponse(account, holderName, balance))
	}

	logger.Info("account service list accounts success", logger.Fields{
		"count": len(response),
	})

	return commons.SuccessResponse("accounts fetched successfully", response), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error) {
	return s.execute(ctx, domain.EntryDeposit, req)
}

func (s *AccountService) Withdraw(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error) {
	return s.execute(ctx, domain.EntryWithdrawal, req)
}

func (s *AccountService) execute(ctx context.Context, kind domain.EntryKind, req models.MovementRequest) (commons.Response[models.MovementResponse], error) {
	operation := strings.ToLower(string(kind))
	logger.Info("account service "+operation+" request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service "+operation+" validation failed", err, nil)
		return commons.ErrorResponse[models.MovementResponse](commons.MessageValidationFailed, err.Error()), err
	}

	client, account, failure, err := s.resolve(ctx, req.NationalID, req.AccountNumber, operation)
	if err != nil {
		return commons.ErrorResponse[models.MovementResponse](failure.Message, failure.Errors...), err
	}

	tx, ok := domain.NewTransaction(kind, req.Amount)
	if !ok {
		err := fmt.Errorf("unsupported transaction kind %q", kind)
		return commons.ErrorResponse[models.MovementResponse]("failed to process transaction", err.Error()), err
	}

	var entry domain.LedgerEntry
	var balance decimal.Decimal
	err = s.accountRepo.WithLock(ctx, account.Number(), func(acc domain.Account) error {
		recorded, err := client.ExecuteTransaction(acc, tx)
		if err != nil {
			return err
		}
		entry = recorded
		balance = acc.Balance()
		return nil
	})
	s.metrics.ObserveTransaction(kind, err)
	if err != nil {
		logger.Error("account service "+operation+" failed", err, logger.Fields{
			"accountNumber": account.Number(),
			"amount":        req.Amount.String(),
		})
		if domain.IsRejection(err) {
			return commons.ErrorResponse[models.MovementResponse](commons.MessageTransactionRejected, err.Error()), err
		}
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.MovementResponse](commons.MessageAccountNotFound), err
		}
		return commons.ErrorResponse[models.MovementResponse]("failed to process transaction", "Unable to process transaction right now"), err
	}

	logger.Info("account service "+operation+" success", logger.Fields{
		"accountNumber": account.Number(),
		"entryId":       entry.ID,
		"amount":        entry.Amount.String(),
		"balance":       balance.String(),
	})

	response := models.MovementResponse{
		EntryID:       entry.ID,
		AccountNumber: account.Number(),
		Kind:          string(entry.Kind),
		Amount:        entry.Amount,
		Balance:       balance,
		RecordedAt:    entry.RecordedAt.Format(time.RFC3339),
	}

	return commons.SuccessResponse(operation+" completed successfully", response), nil
}

func (s *AccountService) GetStatement(ctx context.Context, nationalID string, accountNumber int64) (commons.Response[models.StatementResponse], error) {
	logger.Info("account service get statement request", logger.Fields{
		"nationalId":    nationalID,
		"accountNumber": accountNumber,
	})

	if strings.TrimSpace(nationalID) == "" {
		return commons.ErrorResponse[models.StatementResponse](commons.MessageValidationFailed, "nationalId is required"), fmt.Errorf("nationalId is required")
	}
	if accountNumber < 0 {
		return commons.ErrorResponse[models.StatementResponse](commons.MessageValidationFailed, "accountNumber cannot be negative"), fmt.Errorf("accountNumber cannot be negative")
	}

	client, account, failure, err := s.resolve(ctx, nationalID, accountNumber, "get statement")
	if err != nil {
		return commons.ErrorResponse[models.StatementResponse](failure.Message, failure.Errors...), err
	}

	response := models.StatementResponse{
		AccountNumber: account.Number(),
		Branch:        account.Branch(),
		HolderName:    client.FullName,
	}
	err = s.accountRepo.WithLock(ctx, account.Number(), func(acc domain.Account) error {
		entries := acc.History().Entries()
		response.Entries = make([]models.StatementEntry, 0, len(entries))
		for _, entry := range entries {
			response.Entries = append(response.Entries, models.StatementEntry{
				ID:         entry.ID,
				Kind:       string(entry.Kind),
				Amount:     entry.Amount,
				RecordedAt: entry.RecordedAt.Format(time.RFC3339),
			})
		}
		response.Balance = acc.Balance()
		return nil
	})
	if err != nil {
		logger.Error("account service get statement failed", err, logger.Fields{
			"accountNumber": account.Number(),
		})
		return commons.ErrorResponse[models.StatementResponse]("failed to get statement", "Unable to fetch statement right now"), err
	}

	return commons.SuccessResponse("statement fetched successfully", response), nil
}

// resolve finds the client and the account the request targets. Without an
// explicit account number the client's first account is used.
func (s *AccountService) resolve(ctx context.Context, nationalID string, accountNumber int64, operation string) (*domain.IndividualClient, domain.Account, commons.Response[struct{}], error) {
	client, err := s.clientRepo.GetByNationalID(ctx, strings.TrimSpace(nationalID))
	if err != nil {
		logger.Error("account service "+operation+" client lookup failed", err, nil)
		if errors.Is(err, commons.ErrRecordNotFound) {
			return nil, nil, commons.ErrorResponse[struct{}](commons.MessageClientNotFound), err
		}
		return nil, nil, commons.ErrorResponse[struct{}]("failed to "+operation, "Unable to fetch client right now"), err
	}

	accounts := client.Accounts()
	if len(accounts) == 0 {
		logger.Info("account service "+operation+" client has no account", logger.Fields{
			"clientId": client.ID,
		})
		return nil, nil, commons.ErrorResponse[struct{}](commons.MessageAccountNotFound, "client has no account"), errNoAccount
	}

	if accountNumber == 0 {
		return client, accounts[0], commons.Response[struct{}]{}, nil
	}

	owner, err := s.accountRepo.OwnerOf(ctx, accountNumber)
	if err != nil || owner != client.ID {
		if err == nil {
			err = domain.ErrAccountNotFound
		}
		logger.Error("account service "+operation+" account lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"clientId":      client.ID,
		})
		return nil, nil, commons.ErrorResponse[struct{}](commons.MessageAccountNotFound, "account does not belong to this client"), err
	}

	for _, account := range accounts {
		if account.Number() == accountNumber {
			return client, account, commons.Response[struct{}]{}, nil
		}
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, nil, commons.ErrorResponse[struct{}](commons.MessageAccountNotFound), err
	}
	return client, account, commons.Response[struct{}]{}, nil
}

func mapAccountToResponse(account domain.Account, holderName string, balance decimal.Decimal) models.AccountResponse {
	response := models.AccountResponse{
		AccountNumber: account.Number(),
		Branch:        account.Branch(),
		Kind:          string(account.Kind()),
		OwnerID:       account.OwnerID(),
		HolderName:    holderName,
		Balance:       balance,
	}

	if checking, ok := account.(*domain.CheckingAccount); ok {
		limit := checking.OverdraftLimit()
		response.OverdraftLimit = &limit
		response.MaxWithdrawals = checking.MaxWithdrawals()
	}

	return response
}
