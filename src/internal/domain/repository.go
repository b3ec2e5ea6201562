package domain

import "context"

type ClientRepository interface {
	Create(ctx context.Context, client *IndividualClient) (*IndividualClient, error)
	GetByNationalID(ctx context.Context, nationalID string) (*IndividualClient, error)
	GetByID(ctx context.Context, id string) (*IndividualClient, error)
	List(ctx context.Context) ([]*IndividualClient, error)
}

type AccountRepository interface {
	// Create assigns the next account number and stores the account built by open.
	Create(ctx context.Context, open func(number int64) Account) (Account, error)
	GetByAccountNumber(ctx context.Context, number int64) (Account, error)
	List(ctx context.Context) ([]Account, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Account, error)
	// OwnerOf resolves the owning client ID from the registry's own side table.
	OwnerOf(ctx context.Context, number int64) (string, error)
	// WithLock runs fn while holding the exclusive lock of the account.
	WithLock(ctx context.Context, number int64, fn func(account Account) error) error
}
