package commands_test

import (
	"context"

	"brewery/internal/core/application/usecases/commands"
	"brewery/internal/core/domain/model/beer"
	"brewery/internal/core/domain/model/beerorder"
	"brewery/internal/core/domain/model/customer"
	"brewery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBeerOrderRepository struct{ mock.Mock }

func (m *MockBeerOrderRepository) Add(ctx context.Context, o *beerorder.BeerOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockBeerOrderRepository) Update(ctx context.Context, o *beerorder.BeerOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockBeerOrderRepository) Get(ctx context.Context, id int) (*beerorder.BeerOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*beerorder.BeerOrder), args.Error(1)
}
func (m *MockBeerOrderRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBeerRepository struct{ mock.Mock }

func (m *MockBeerRepository) Add(ctx context.Context, b *beer.Beer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBeerRepository) Update(ctx context.Context, b *beer.Beer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBeerRepository) Get(ctx context.Context, id int) (*beer.Beer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*beer.Beer), args.Error(1)
}
func (m *MockBeerRepository) GetByUPC(ctx context.Context, upc string) (*beer.Beer, error) {
	args := m.Called(ctx, upc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*beer.Beer), args.Error(1)
}
func (m *MockBeerRepository) GetAll(ctx context.Context) ([]*beer.Beer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*beer.Beer), args.Error(1)
}
func (m *MockBeerRepository) GetAllByIDs(ctx context.Context, ids []int) (map[int]*beer.Beer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]*beer.Beer), args.Error(1)
}
func (m *MockBeerRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id int) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) BeerOrderRepository() ports.BeerOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.BeerOrderRepository)
}
func (m *MockOrderUoW) BeerRepository() ports.BeerRepository {
	args := m.Called()
	return args.Get(0).(ports.BeerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBeerUoW struct{ mock.Mock }

func (m *MockBeerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBeerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBeerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBeerUoW) BeerRepository() ports.BeerRepository {
	args := m.Called()
	return args.Get(0).(ports.BeerRepository)
}

type MockBeerUoWFactory struct{ mock.Mock }

func (m *MockBeerUoWFactory) Create() commands.BeerUoW {
	args := m.Called()
	return args.Get(0).(commands.BeerUoW)
}

type MockCustomerUoW struct{ mock.Mock }

func (m *MockCustomerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCustomerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCustomerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}
