// Package queries contains read-only operations in the CQRS split. Query
// handlers never open a transaction: they read through narrow reader ports and
// return flat response views, so the presentation layer does not touch domain
// aggregates for display purposes.
package queries

import (
	"context"

	"brewery/internal/core/domain/model/beer"
	"brewery/internal/core/domain/model/beerorder"
	"brewery/internal/core/domain/model/customer"
)

// Reader ports declare the narrowest read surface each query handler needs.
// The postgres repositories satisfy them when constructed over the root
// connection, outside any unit of work.
type (
	// BeerOrderReader loads order aggregates with lines fully materialized.
	BeerOrderReader interface {
		Get(ctx context.Context, id int) (*beerorder.BeerOrder, error)
	}

	// BeerReader reads catalog records.
	BeerReader interface {
		Get(ctx context.Context, id int) (*beer.Beer, error)
		GetAll(ctx context.Context) ([]*beer.Beer, error)
	}

	// CustomerReader reads customer records.
	CustomerReader interface {
		Get(ctx context.Context, id int) (*customer.Customer, error)
		GetAll(ctx context.Context) ([]*customer.Customer, error)
	}
)
