package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/retail-ledger/src/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error)
	Deposit(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error)
	Withdraw(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error)
	GetStatement(ctx context.Context, nationalID string, accountNumber int64) (commons.Response[models.StatementResponse], error)
}
