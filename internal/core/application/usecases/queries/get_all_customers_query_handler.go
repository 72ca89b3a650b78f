package queries

import "context"

// GetAllCustomersQueryHandler lists all customers.
type GetAllCustomersQueryHandler struct {
	customers CustomerReader
}

// NewGetAllCustomersQueryHandler creates a handler for customer listing.
func NewGetAllCustomersQueryHandler(customers CustomerReader) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{customers: customers}
}

// Handle returns every customer ordered by id. No customers yields an empty
// slice, not nil.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context, query GetAllCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.customers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CustomerResponse, 0, len(all))
	for _, c := range all {
		views = append(views, NewCustomerResponse(c))
	}
	return views, nil
}
