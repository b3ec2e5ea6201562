package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/api-sage/retail-ledger/src/internal/domain"
	"github.com/api-sage/retail-ledger/src/internal/logger"
)

type ClientRepository struct {
	mu           sync.RWMutex
	byNationalID map[string]*domain.IndividualClient
	byID         map[string]*domain.IndividualClient
	order        []string
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		byNationalID: make(map[string]*domain.IndividualClient),
		byID:         make(map[string]*domain.IndividualClient),
	}
}

func (r *ClientRepository) Create(_ context.Context, client *domain.IndividualClient) (*domain.IndividualClient, error) {
	nationalID := strings.TrimSpace(client.NationalID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byNationalID[nationalID]; exists {
		logger.Info("client repository duplicate national id", logger.Fields{
			"clientId": client.ID,
		})
		return nil, domain.ErrDuplicateClient
	}

	r.byNationalID[nationalID] = client
	r.byID[client.ID] = client
	r.order = append(r.order, client.ID)

	logger.Info("client repository create success", logger.Fields{
		"clientId": client.ID,
	})
	return client, nil
}

func (r *ClientRepository) GetByNationalID(_ context.Context, nationalID string) (*domain.IndividualClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.byNationalID[strings.TrimSpace(nationalID)]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (*domain.IndividualClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

// List returns clients in registration order.
func (r *ClientRepository) List(_ context.Context) ([]*domain.IndividualClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.IndividualClient, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

var _ domain.ClientRepository = (*ClientRepository)(nil)
