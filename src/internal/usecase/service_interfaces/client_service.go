package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/retail-ledger/src/internal/commons"
)

type ClientService interface {
	CreateClient(ctx context.Context, req models.CreateClientRequest) (commons.Response[models.ClientResponse], error)
	GetClient(ctx context.Context, nationalID string) (commons.Response[models.ClientResponse], error)
}
