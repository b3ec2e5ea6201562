package memory

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/api-sage/retail-ledger/src/internal/domain"
	"github.com/api-sage/retail-ledger/src/internal/logger"
)

type accountRecord struct {
	mu      sync.Mutex
	account domain.Account
}

type AccountRepository struct {
	mu       sync.RWMutex
	sequence *atomic.Int64
	accounts map[int64]*accountRecord
	owners   map[int64]string
	order    []int64
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		sequence: atomic.NewInt64(0),
		accounts: make(map[int64]*accountRecord),
		owners:   make(map[int64]string),
	}
}

func (r *AccountRepository) Create(_ context.Context, open func(number int64) domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	number := r.sequence.Load() + 1
	account := open(number)
	if account == nil {
		return nil, fmt.Errorf("create account: factory returned no account")
	}
	if account.Number() != number {
		return nil, fmt.Errorf("create account: factory used number %d, expected %d", account.Number(), number)
	}
	r.sequence.Store(number)

	r.accounts[number] = &accountRecord{account: account}
	r.owners[number] = account.OwnerID()
	r.order = append(r.order, number)

	logger.Info("account repository create success", logger.Fields{
		"accountNumber": number,
		"ownerId":       account.OwnerID(),
		"kind":          account.Kind(),
	})

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, number int64) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.accounts[number]
	if !ok {
		logger.Info("account repository record not found", logger.Fields{
			"accountNumber": number,
		})
		return nil, domain.ErrAccountNotFound
	}
	return record.account, nil
}

// List returns every account in opening order.
func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, r.accounts[number].account)
	}
	return out, nil
}

func (r *AccountRepository) ListByOwner(_ context.Context, ownerID string) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Account
	for _, number := range r.order {
		if r.owners[number] == ownerID {
			out = append(out, r.accounts[number].account)
		}
	}
	return out, nil
}

func (r *AccountRepository) OwnerOf(_ context.Context, number int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, ok := r.owners[number]
	if !ok {
		return "", domain.ErrAccountNotFound
	}
	return owner, nil
}

func (r *AccountRepository) WithLock(ctx context.Context, number int64, fn func(account domain.Account) error) error {
	r.mu.RLock()
	record, ok := r.accounts[number]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrAccountNotFound
	}

	record.mu.Lock()
	defer record.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(record.account)
}

// LastNumber is the most recently assigned account number, 0 when none.
func (r *AccountRepository) LastNumber() int64 {
	return r.sequence.Load()
}

var _ domain.AccountRepository = (*AccountRepository)(nil)
