package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID      string
	Address string

	mu       sync.RWMutex
	accounts []Account
}

func NewClient(address string) *Client {
	return &Client{
		ID:      uuid.NewString(),
		Address: address,
	}
}

func (c *Client) LinkAccount(account Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, account)
}

// Accounts returns the linked accounts in linking order.
func (c *Client) Accounts() []Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// ExecuteTransaction runs tx against account. The caller is responsible for
// passing an account reachable from this client.
func (c *Client) ExecuteTransaction(account Account, tx Transaction) (LedgerEntry, error) {
	return tx.Execute(account)
}

type IndividualClient struct {
	Client
	FullName   string
	BirthDate  time.Time
	NationalID string
}

func NewIndividualClient(fullName string, birthDate time.Time, nationalID string, address string) *IndividualClient {
	return &IndividualClient{
		Client: Client{
			ID:      uuid.NewString(),
			Address: address,
		},
		FullName:   fullName,
		BirthDate:  birthDate,
		NationalID: nationalID,
	}
}
