package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-propfi-ledger/internal/api/middleware"
	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/dto"
	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// InitializeProperty creates the signer's property
	// POST /api/v1/properties
	InitializeProperty(c *gin.Context)

	// ListProperties retrieves properties with optional filters
	// GET /api/v1/properties?owner=<address>&listed=<bool>&limit=<limit>&offset=<offset>
	ListProperties(c *gin.Context)

	// GetProperty retrieves a single property by its record address
	// GET /api/v1/properties/:address
	GetProperty(c *gin.Context)

	// GetPropertyRecord retrieves the binary record of a property
	// GET /api/v1/properties/:address/record
	GetPropertyRecord(c *gin.Context)

	// ListProperty opens a property for sale
	// POST /api/v1/properties/:address/listing
	ListProperty(c *gin.Context)

	// UpdateProperty changes the share price and/or issues additional shares
	// PATCH /api/v1/properties/:address
	UpdateProperty(c *gin.Context)

	// BuyProperty buys shares at the listed price
	// POST /api/v1/properties/:address/purchases
	BuyProperty(c *gin.Context)

	// DepositRent adds to the rent pool
	// POST /api/v1/properties/:address/rent/deposits
	DepositRent(c *gin.Context)

	// DistributeRent resets the rent pool
	// POST /api/v1/properties/:address/rent/distributions
	DistributeRent(c *gin.Context)

	// GetBalances retrieves the balances of an account
	// GET /api/v1/accounts/:address/balances?unit=<share unit>
	GetBalances(c *gin.Context)

	// GetEvents retrieves the committed event log
	// GET /api/v1/events?after=<sequence>&limit=<limit>
	GetEvents(c *gin.Context)

	// BuyShares issues shares without payment (requires admin authentication)
	// POST /api/v1/admin/properties/:address/shares
	BuyShares(c *gin.Context)

	// FundAccount credits base currency to an account (requires admin authentication)
	// POST /api/v1/admin/accounts/:address/fund
	FundAccount(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// pathAddress parses the :address path parameter, responding on failure
func pathAddress(c *gin.Context) (domain.Address, bool) {
	raw := c.Param("address")
	if raw == "" {
		respondBadRequest(c, "Address is required")
		return domain.Address{}, false
	}
	address, err := domain.ParseAddress(raw)
	if err != nil {
		respondBadRequest(c, "Invalid address", raw)
		return domain.Address{}, false
	}
	return address, true
}

// signer returns the authenticated signer, responding when absent
func signer(c *gin.Context) (domain.Address, bool) {
	caller, ok := middleware.SignerFromContext(c)
	if !ok {
		respondUnauthorized(c, "Signer authentication required")
	}
	return caller, ok
}

// bindJSON decodes the request body into req, responding on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}

func (h *handler) InitializeProperty(c *gin.Context) {
	caller, ok := signer(c)
	if !ok {
		return
	}

	var req dto.InitializePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.executor.InitializeProperty(c.Request.Context(), caller, req)
	if err != nil {
		h.respondError(c, err, "Failed to initialize property")
		return
	}

	c.JSON(http.StatusCreated, property)
}

func (h *handler) ListProperties(c *gin.Context) {
	queryParams, err := ParseListPropertiesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListProperties(
		c.Request.Context(),
		queryParams.owner,
		queryParams.Listed,
		queryParams.Limit,
		queryParams.Offset,
	)
	if err != nil {
		h.respondError(c, err, "Failed to list properties")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetProperty(c *gin.Context) {
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	property, err := h.executor.GetProperty(c.Request.Context(), address)
	if err != nil {
		h.respondError(c, err, "Failed to get property")
		return
	}

	if property == nil {
		respondNotFound(c, "Property not found")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *handler) GetPropertyRecord(c *gin.Context) {
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	record, err := h.executor.GetPropertyRecord(c.Request.Context(), address)
	if err != nil {
		h.respondError(c, err, "Failed to get property record")
		return
	}

	if record == nil {
		respondNotFound(c, "Property not found")
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", record)
}

func (h *handler) ListProperty(c *gin.Context) {
	caller, ok := signer(c)
	if !ok {
		return
	}
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	var req dto.ListPropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.executor.ListProperty(c.Request.Context(), caller, address, req)
	if err != nil {
		h.respondError(c, err, "Failed to list property")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *handler) UpdateProperty(c *gin.Context) {
	caller, ok := signer(c)
	if !ok {
		return
	}
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.executor.UpdateProperty(c.Request.Context(), caller, address, req)
	if err != nil {
		h.respondError(c, err, "Failed to update property")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *handler) BuyProperty(c *gin.Context) {
	buyer, ok := signer(c)
	if !ok {
		return
	}
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.executor.BuyProperty(c.Request.Context(), buyer, address, req)
	if err != nil {
		h.respondError(c, err, "Failed to buy property")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *handler) DepositRent(c *gin.Context) {
	caller, ok := signer(c)
	if !ok {
		return
	}
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.executor.DepositRent(c.Request.Context(), caller, address, req)
	if err != nil {
		h.respondError(c, err, "Failed to deposit rent")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *handler) DistributeRent(c *gin.Context) {
	caller, ok := signer(c)
	if !ok {
		return
	}
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	property, err := h.executor.DistributeRent(c.Request.Context(), caller, address)
	if err != nil {
		h.respondError(c, err, "Failed to distribute rent")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *handler) GetBalances(c *gin.Context) {
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	queryParams, err := ParseGetBalancesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetBalances(c.Request.Context(), address, queryParams.unit)
	if err != nil {
		h.respondError(c, err, "Failed to get balances")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetEvents(c *gin.Context) {
	queryParams, err := ParseGetEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetEvents(c.Request.Context(), queryParams.After, queryParams.Limit)
	if err != nil {
		h.respondError(c, err, "Failed to get events")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) BuyShares(c *gin.Context) {
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	var req dto.BuySharesRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.executor.BuyShares(c.Request.Context(), address, req)
	if err != nil {
		h.respondError(c, err, "Failed to issue shares")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *handler) FundAccount(c *gin.Context) {
	address, ok := pathAddress(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	balance, err := h.executor.FundAccount(c.Request.Context(), address, req)
	if err != nil {
		h.respondError(c, err, "Failed to fund account")
		return
	}

	c.JSON(http.StatusOK, balance)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-propfi-ledger",
	})
}
