package rest

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// ListPropertiesQueryParams holds query parameters for GET /properties
type ListPropertiesQueryParams struct {
	Owner  string `form:"owner"`
	Listed *bool  `form:"listed"`
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`

	owner *domain.Address
}

// ParseListPropertiesQuery parses query parameters for GET /properties
func ParseListPropertiesQuery(c *gin.Context) (*ListPropertiesQueryParams, error) {
	var params ListPropertiesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Owner != "" {
		owner, err := domain.ParseAddress(params.Owner)
		if err != nil {
			return nil, fmt.Errorf("invalid owner: %s", params.Owner)
		}
		params.owner = &owner
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListPropertiesQueryParams) Validate() error {
	if p.Limit < 1 || p.Limit > constants.MAX_PAGE_SIZE {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE)
	}
	return nil
}

// GetEventsQueryParams holds query parameters for GET /events
type GetEventsQueryParams struct {
	After uint64 `form:"after,default=0"`
	Limit int    `form:"limit,default=50"`
}

// ParseGetEventsQuery parses query parameters for GET /events
func ParseGetEventsQuery(c *gin.Context) (*GetEventsQueryParams, error) {
	var params GetEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Validate validates the query parameters
func (p *GetEventsQueryParams) Validate() error {
	if p.Limit < 1 || p.Limit > constants.MAX_PAGE_SIZE {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE)
	}
	return nil
}

// GetBalancesQueryParams holds query parameters for GET /accounts/:address/balances
type GetBalancesQueryParams struct {
	Unit string `form:"unit"`

	unit *domain.Address
}

// ParseGetBalancesQuery parses query parameters for GET /accounts/:address/balances
func ParseGetBalancesQuery(c *gin.Context) (*GetBalancesQueryParams, error) {
	var params GetBalancesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Unit != "" {
		unit, err := domain.ParseAddress(params.Unit)
		if err != nil {
			return nil, errors.New("invalid unit")
		}
		params.unit = &unit
	}

	return &params, nil
}
