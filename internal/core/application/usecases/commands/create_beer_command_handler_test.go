package commands_test

import (
	"errors"
	"testing"

	"brewery/internal/core/application/usecases/commands"
	"brewery/internal/core/domain/model/beer"
	"brewery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createBeerCmd(t *testing.T) commands.CreateBeerCommand {
	t.Helper()
	cmd, err := commands.NewCreateBeerCommand(
		"Galaxy Cat", "PALE_ALE", "0631234200036", 122, decimal.NewFromFloat(12.99))
	require.NoError(t, err)
	return cmd
}

func TestNewCreateBeerCommand_Invalid(t *testing.T) {
	price := decimal.NewFromFloat(12.99)

	_, err := commands.NewCreateBeerCommand("", "PALE_ALE", "0631234200036", 1, price)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateBeerCommand("Galaxy Cat", "", "0631234200036", 1, price)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateBeerCommand("Galaxy Cat", "PALE_ALE", "", 1, price)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateBeerCommand("Galaxy Cat", "PALE_ALE", "0631234200036", -1, price)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateBeerCommand("Galaxy Cat", "PALE_ALE", "0631234200036", 1, decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateBeerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := createBeerCmd(t)

	repo := new(MockBeerRepository)
	uow := new(MockBeerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BeerRepository").Return(repo).Once(),
		repo.On("GetByUPC", mock.Anything, "0631234200036").
			Return(nil, errs.NewObjectNotFoundError("upc", "0631234200036")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*beer.Beer")).
			Run(func(args mock.Arguments) {
				b := args.Get(1).(*beer.Beer)
				require.NoError(t, b.AssignID(7))
			}).Return(nil).Once(),
		repo.On("Get", mock.Anything, 7).Return(catalogBeer(t, 7, "Galaxy Cat"), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBeerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBeerCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBeerCommandHandler_Handle_UPCTaken(t *testing.T) {
	ctx := t.Context()
	cmd := createBeerCmd(t)

	repo := new(MockBeerRepository)
	uow := new(MockBeerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BeerRepository").Return(repo).Once(),
		repo.On("GetByUPC", mock.Anything, "0631234200036").
			Return(catalogBeer(t, 3, "Other"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBeerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBeerCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateBeerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateBeerCommand{} // not constructed properly
	factory := new(MockBeerUoWFactory)
	h := commands.NewCreateBeerCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateBeerCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd := createBeerCmd(t)

	repo := new(MockBeerRepository)
	uow := new(MockBeerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BeerRepository").Return(repo).Once(),
		repo.On("GetByUPC", mock.Anything, "0631234200036").
			Return(nil, errors.New("db error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBeerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBeerCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
