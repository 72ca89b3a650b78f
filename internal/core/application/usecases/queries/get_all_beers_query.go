package queries

import (
	"errors"

	"brewery/internal/pkg/guard"
)

var ErrGetAllBeersQueryIsNotConstructed = errors.New(
	"GetAllBeersQuery must be created via NewGetAllBeersQuery constructor",
)

// GetAllBeersQuery retrieves the whole catalog ordered by id.
type GetAllBeersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllBeersQuery creates a parameterless query for the full catalog.
func NewGetAllBeersQuery() GetAllBeersQuery {
	return GetAllBeersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllBeersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBeersQueryIsNotConstructed)
}
