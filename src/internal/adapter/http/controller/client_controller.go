package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/retail-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/retail-ledger/src/internal/commons"
	"github.com/api-sage/retail-ledger/src/internal/logger"
	"github.com/api-sage/retail-ledger/src/internal/usecase/service_interfaces"
)

type ClientController struct {
	service service_interfaces.ClientService
}

func NewClientController(service service_interfaces.ClientService) *ClientController {
	return &ClientController{service: service}
}

func (c *ClientController) RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.clients))
	if middleware != nil {
		handler = middleware(handler)
	}
	mux.Handle("/clients", handler)
}

func (c *ClientController) clients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createClient(w, r)
	case http.MethodGet:
		c.getClient(w, r)
	default:
		start := time.Now()
		response := commons.ErrorResponse[models.ClientResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
	}
}

func (c *ClientController) createClient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.ClientResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateClient(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusFor(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *ClientController) getClient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetClient(r.Context(), r.URL.Query().Get("nationalId"))
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusFor(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
