package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/retail-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/retail-ledger/src/internal/commons"
	"github.com/api-sage/retail-ledger/src/internal/domain"
	"github.com/api-sage/retail-ledger/src/internal/logger"
	"github.com/api-sage/retail-ledger/src/internal/metrics"
)

type ClientService struct {
	clientRepo domain.ClientRepository
	metrics    *metrics.Metrics
}

func NewClientService(clientRepo domain.ClientRepository, m *metrics.Metrics) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		metrics:    m,
	}
}

func (s *ClientService) CreateClient(ctx context.Context, req models.CreateClientRequest) (commons.Response[models.ClientResponse], error) {
	logger.Info("client service create client request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("client service create client validation failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse](commons.MessageValidationFailed, err.Error()), err
	}

	birthDate, err := time.Parse(models.DateLayout, strings.TrimSpace(req.BirthDate))
	if err != nil {
		return commons.ErrorResponse[models.ClientResponse](commons.MessageValidationFailed, "birthDate must be in YYYY-MM-DD format"), err
	}

	client := domain.NewIndividualClient(
		strings.TrimSpace(req.FullName),
		birthDate,
		strings.TrimSpace(req.NationalID),
		strings.TrimSpace(req.Address),
	)

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		logger.Error("client service create client repository failed", err, logger.Fields{
			"clientId": client.ID,
		})
		if errors.Is(err, commons.ErrDuplicateRecord) {
			return commons.ErrorResponse[models.ClientResponse](commons.MessageClientExists, "a client with this nationalId already exists"), err
		}
		return commons.ErrorResponse[models.ClientResponse]("failed to create client", "Unable to create client right now"), err
	}

	s.metrics.ClientRegistered()

	logger.Info("client service create client success", logger.Fields{
		"clientId": created.ID,
	})

	return commons.SuccessResponse("client created successfully", mapClientToResponse(created)), nil
}

func (s *ClientService) GetClient(ctx context.Context, nationalID string) (commons.Response[models.ClientResponse], error) {
	logger.Info("client service get client request", logger.Fields{
		"nationalId": nationalID,
	})

	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return commons.ErrorResponse[models.ClientResponse](commons.MessageValidationFailed, "nationalId is required"), fmt.Errorf("nationalId is required")
	}

	client, err := s.clientRepo.GetByNationalID(ctx, nationalID)
	if err != nil {
		logger.Error("client service get client failed", err, nil)
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.ClientResponse](commons.MessageClientNotFound), err
		}
		return commons.ErrorResponse[models.ClientResponse]("failed to get client", "Unable to fetch client right now"), err
	}

	return commons.SuccessResponse("client fetched successfully", mapClientToResponse(client)), nil
}

func mapClientToResponse(client *domain.IndividualClient) models.ClientResponse {
	accounts := client.Accounts()
	numbers := make([]int64, 0, len(accounts))
	for _, account := range accounts {
		numbers = append(numbers, account.Number())
	}

	return models.ClientResponse{
		ID:             client.ID,
		NationalID:     client.NationalID,
		FullName:       client.FullName,
		BirthDate:      client.BirthDate.Format(models.DateLayout),
		Address:        client.Address,
		AccountNumbers: numbers,
	}
}
