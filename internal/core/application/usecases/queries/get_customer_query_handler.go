package queries

import "context"

// GetCustomerQueryHandler loads one customer and maps it to the external view.
type GetCustomerQueryHandler struct {
	customers CustomerReader
}

// NewGetCustomerQueryHandler creates a handler for single-customer retrieval.
func NewGetCustomerQueryHandler(customers CustomerReader) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

// Handle returns the customer view, or a not-found error when the id is absent.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context, query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	c, err := h.customers.Get(ctx, query.CustomerID())
	if err != nil {
		return CustomerResponse{}, err
	}

	return NewCustomerResponse(c), nil
}
