package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/retail-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/retail-ledger/src/internal/domain"
	"github.com/api-sage/retail-ledger/src/internal/metrics"
	"github.com/api-sage/retail-ledger/src/internal/usecase/services"
)

type fixture struct {
	clients  *services.ClientService
	accounts *services.AccountService
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	clientRepo := memory.NewClientRepository()
	accountRepo := memory.NewAccountRepository()
	m := metrics.New(prometheus.NewRegistry())

	return fixture{
		clients:  services.NewClientService(clientRepo, m),
		accounts: services.NewAccountService(accountRepo, clientRepo, m, domain.DefaultOverdraftLimit, domain.DefaultMaxWithdrawals),
		metrics:  m,
	}
}

func (f fixture) registerClient(t *testing.T, nationalID string) models.ClientResponse {
	t.Helper()

	resp, err := f.clients.CreateClient(context.Background(), models.CreateClientRequest{
		NationalID: nationalID,
		FullName:   "Maria Silva",
		BirthDate:  "1990-04-12",
		Address:    "Rua A, 10 - Centro - Recife/PE",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	return *resp.Data
}

func (f fixture) openAccount(t *testing.T, nationalID string) models.AccountResponse {
	t.Helper()

	resp, err := f.accounts.OpenAccount(context.Background(), models.OpenAccountRequest{NationalID: nationalID})
	require.NoError(t, err)
	require.True(t, resp.Success)
	return *resp.Data
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// accountRepoStub fails every call with err.
type accountRepoStub struct {
	domain.AccountRepository
	err error
}

func (s accountRepoStub) Create(context.Context, func(int64) domain.Account) (domain.Account, error) {
	return nil, s.err
}

func (s accountRepoStub) List(context.Context) ([]domain.Account, error) {
	return nil, s.err
}

var errStore = errors.New("store unavailable")
