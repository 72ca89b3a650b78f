package cmd

import (
	httpadapter "brewery/internal/adapters/in/http"
	"brewery/internal/adapters/out/postgres"
	"brewery/internal/core/application/usecases/commands"
	"brewery/internal/core/application/usecases/queries"
	"brewery/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the application layer over one GORM connection.
// Command handlers get a unit-of-work factory; query handlers get read-only
// repositories bound to the root connection.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot builds the composition root over the given connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// NewHTTPHandlers assembles every application entry point the HTTP server exposes.
func (c *CompositionRoot) NewHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		PlaceBeerOrder: c.newPlaceBeerOrderCommandHandler(),
		CreateBeer:     c.newCreateBeerCommandHandler(),
		UpdateBeer:     c.newUpdateBeerCommandHandler(),
		DeleteBeer:     c.newDeleteBeerCommandHandler(),
		CreateCustomer: c.newCreateCustomerCommandHandler(),
		UpdateCustomer: c.newUpdateCustomerCommandHandler(),
		DeleteCustomer: c.newDeleteCustomerCommandHandler(),

		GetBeerOrder:    queries.NewGetBeerOrderQueryHandler(c.readOnly().BeerOrderRepository()),
		GetBeer:         queries.NewGetBeerQueryHandler(c.readOnly().BeerRepository()),
		GetAllBeers:     queries.NewGetAllBeersQueryHandler(c.readOnly().BeerRepository()),
		GetCustomer:     queries.NewGetCustomerQueryHandler(c.readOnly().CustomerRepository()),
		GetAllCustomers: queries.NewGetAllCustomersQueryHandler(c.readOnly().CustomerRepository()),
	}
}

func (c *CompositionRoot) newPlaceBeerOrderCommandHandler() commands.PlaceBeerOrderCommandHandler {
	return commands.NewPlaceBeerOrderCommandHandler(FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	}))
}

func (c *CompositionRoot) newCreateBeerCommandHandler() commands.CreateBeerCommandHandler {
	return commands.NewCreateBeerCommandHandler(c.beerUoWFactory())
}

func (c *CompositionRoot) newUpdateBeerCommandHandler() commands.UpdateBeerCommandHandler {
	return commands.NewUpdateBeerCommandHandler(c.beerUoWFactory())
}

func (c *CompositionRoot) newDeleteBeerCommandHandler() commands.DeleteBeerCommandHandler {
	return commands.NewDeleteBeerCommandHandler(c.beerUoWFactory())
}

func (c *CompositionRoot) newCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) newUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) newDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) beerUoWFactory() commands.BeerUoWFactory {
	return FuncBeerUoWFactory(func() commands.BeerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

// readOnly returns a unit of work that is never begun: its repositories run
// on the root connection, which is what query handlers need.
func (c *CompositionRoot) readOnly() ports.UnitOfWork {
	return c.uowFactory.Create()
}

// FuncOrderUoWFactory adapts a closure to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncBeerUoWFactory adapts a closure to commands.BeerUoWFactory.
type FuncBeerUoWFactory func() commands.BeerUoW

func (f FuncBeerUoWFactory) Create() commands.BeerUoW {
	return f()
}

// FuncCustomerUoWFactory adapts a closure to commands.CustomerUoWFactory.
type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
