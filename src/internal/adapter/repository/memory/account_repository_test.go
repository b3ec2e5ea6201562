package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-ledger/src/internal/domain"
)

func testClient(nationalID string) *domain.IndividualClient {
	return domain.NewIndividualClient("Ana Souza", time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC), nationalID, "Rua B, 20")
}

func openChecking(owner *domain.IndividualClient) func(number int64) domain.Account {
	return func(number int64) domain.Account {
		return domain.OpenCheckingAccount(&owner.Client, number)
	}
}

func TestAccountRepositoryAssignsSequentialNumbers(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	owner := testClient("1")

	for want := int64(1); want <= 5; want++ {
		account, err := repo.Create(ctx, openChecking(owner))
		require.NoError(t, err)
		assert.Equal(t, want, account.Number())
	}
	assert.Equal(t, int64(5), repo.LastNumber())

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 5)
	for i, account := range accounts {
		assert.Equal(t, int64(i+1), account.Number())
	}
}

func TestAccountRepositoryConcurrentCreatesAreUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	owner := testClient("1")

	const n = 50
	numbers := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			account, err := repo.Create(ctx, openChecking(owner))
			if err == nil {
				numbers <- account.Number()
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int64]bool)
	for number := range numbers {
		assert.False(t, seen[number], "duplicate number %d", number)
		seen[number] = true
	}
	assert.Len(t, seen, n)
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i])
	}
}

func TestAccountRepositoryRejectsMismatchedFactory(t *testing.T) {
	repo := NewAccountRepository()
	owner := testClient("1")

	_, err := repo.Create(context.Background(), func(number int64) domain.Account {
		return domain.OpenAccount(&owner.Client, number+10)
	})
	require.Error(t, err)
	assert.Zero(t, repo.LastNumber())

	account, err := repo.Create(context.Background(), openChecking(owner))
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.Number())
}

func TestAccountRepositoryLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	ana := testClient("1")
	bia := testClient("2")

	_, err := repo.Create(ctx, openChecking(ana))
	require.NoError(t, err)
	_, err = repo.Create(ctx, openChecking(bia))
	require.NoError(t, err)
	_, err = repo.Create(ctx, openChecking(ana))
	require.NoError(t, err)

	owned, err := repo.ListByOwner(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, int64(1), owned[0].Number())
	assert.Equal(t, int64(3), owned[1].Number())

	owner, err := repo.OwnerOf(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, bia.ID, owner)

	_, err = repo.OwnerOf(ctx, 99)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = repo.GetByAccountNumber(ctx, 99)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepositoryWithLockSerialisesMovements(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	owner := testClient("1")
	account, err := repo.Create(ctx, openChecking(owner))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.WithLock(ctx, account.Number(), func(acc domain.Account) error {
				_, err := domain.NewDeposit(decimal.NewFromInt(1)).Execute(acc)
				return err
			})
		}()
	}
	wg.Wait()

	require.NoError(t, repo.WithLock(ctx, account.Number(), func(acc domain.Account) error {
		assert.True(t, acc.Balance().Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 100, acc.History().Len())
		return nil
	}))
}

func TestAccountRepositoryWithLockHonoursContext(t *testing.T) {
	repo := NewAccountRepository()
	owner := testClient("1")
	account, err := repo.Create(context.Background(), openChecking(owner))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err = repo.WithLock(ctx, account.Number(), func(domain.Account) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	err = repo.WithLock(context.Background(), 42, func(domain.Account) error { return nil })
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}
