package beerorder_test

import (
	"testing"
	"time"

	"brewery/internal/core/domain/model/beer"
	"brewery/internal/core/domain/model/beerorder"
	"brewery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persistedBeer(t *testing.T, id int, name string) *beer.Beer {
	t.Helper()
	b, err := beer.RestoreBeer(id, 0, name, "PALE_ALE", "0631234200036", 100,
		decimal.RequireFromString("11.99"), time.Now(), time.Now())
	require.NoError(t, err)
	return b
}

func TestNewBeerOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		o, err := beerorder.NewBeerOrder("cust-1")
		require.NoError(t, err)

		assert.Equal(t, 0, o.ID())
		assert.Equal(t, "cust-1", o.CustomerRef())
		assert.Equal(t, beerorder.StatusNew, o.Status())
		assert.Nil(t, o.PaymentAmount())
		assert.Empty(t, o.Lines())
		require.NoError(t, o.Validate())
	})

	t.Run("blank customerRef is rejected", func(t *testing.T) {
		for _, ref := range []string{"", "   ", "\t\n"} {
			_, err := beerorder.NewBeerOrder(ref)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestBeerOrder_AddLine(t *testing.T) {
	t.Run("attaches one NEW line per beer", func(t *testing.T) {
		o, err := beerorder.NewBeerOrder("cust-1")
		require.NoError(t, err)

		require.NoError(t, o.AddLine(persistedBeer(t, 1, "Galaxy Cat"), 3))
		require.NoError(t, o.AddLine(persistedBeer(t, 2, "Mango Bobs"), 2))

		lines := o.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, 1, lines[0].BeerID())
		assert.Equal(t, "Galaxy Cat", lines[0].BeerName())
		assert.Equal(t, 3, lines[0].Quantity())
		assert.Equal(t, beerorder.LineStatusNew, lines[0].Status())
		assert.Equal(t, 2, lines[1].BeerID())
		assert.Equal(t, 2, lines[1].Quantity())
	})

	t.Run("rejects non-positive quantity naming the beer", func(t *testing.T) {
		o, _ := beerorder.NewBeerOrder("cust-1")

		err := o.AddLine(persistedBeer(t, 1, "Galaxy Cat"), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "beerId 1")

		err = o.AddLine(persistedBeer(t, 1, "Galaxy Cat"), -2)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unresolved beer is a precondition violation", func(t *testing.T) {
		o, _ := beerorder.NewBeerOrder("cust-1")

		require.ErrorIs(t, o.AddLine(nil, 1), errs.ErrPreconditionViolated)

		transient, err := beer.NewBeer("Galaxy Cat", "PALE_ALE", "0631234200036", 1,
			decimal.RequireFromString("11.99"))
		require.NoError(t, err)
		require.ErrorIs(t, o.AddLine(transient, 1), errs.ErrPreconditionViolated)
	})

	t.Run("a second line for the same beer is unrepresentable", func(t *testing.T) {
		o, _ := beerorder.NewBeerOrder("cust-1")
		require.NoError(t, o.AddLine(persistedBeer(t, 1, "Galaxy Cat"), 3))

		err := o.AddLine(persistedBeer(t, 1, "Galaxy Cat"), 5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "beerId 1")
		assert.Len(t, o.Lines(), 1)
	})
}

func TestBeerOrder_AssignID(t *testing.T) {
	o, _ := beerorder.NewBeerOrder("cust-1")
	require.NoError(t, o.AddLine(persistedBeer(t, 1, "Galaxy Cat"), 3))
	require.NoError(t, o.AddLine(persistedBeer(t, 2, "Mango Bobs"), 2))

	// Before the store assigns the order id, lines are not addressable.
	_, err := o.Lines()[0].ID()
	require.ErrorIs(t, err, errs.ErrPreconditionViolated)

	require.NoError(t, o.AssignID(42))
	assert.Equal(t, 42, o.ID())

	for _, line := range o.Lines() {
		id, idErr := line.ID()
		require.NoError(t, idErr)
		assert.Equal(t, 42, id.OrderID)
	}

	require.ErrorIs(t, o.AssignID(43), errs.ErrPreconditionViolated)
	require.ErrorIs(t, (&beerorder.BeerOrder{}).Validate(), beerorder.ErrBeerOrderIsNotConstructed)
}

func TestBeerOrder_RemoveLine(t *testing.T) {
	o, _ := beerorder.NewBeerOrder("cust-1")
	require.NoError(t, o.AddLine(persistedBeer(t, 1, "Galaxy Cat"), 3))
	require.NoError(t, o.AddLine(persistedBeer(t, 2, "Mango Bobs"), 2))

	require.NoError(t, o.RemoveLine(1))
	lines := o.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].BeerID())

	require.ErrorIs(t, o.RemoveLine(99), errs.ErrObjectNotFound)
}

func TestRestoreBeerOrder(t *testing.T) {
	now := time.Now()

	t.Run("restores persisted aggregate", func(t *testing.T) {
		line, err := beerorder.RestoreBeerOrderLine(42, 1, 0, "Galaxy Cat", 3, beerorder.LineStatusNew)
		require.NoError(t, err)

		amount := decimal.RequireFromString("35.97")
		o, err := beerorder.RestoreBeerOrder(42, 2, "cust-1", &amount, beerorder.StatusNew,
			[]*beerorder.BeerOrderLine{line}, now, now)
		require.NoError(t, err)

		assert.Equal(t, 42, o.ID())
		assert.Equal(t, 2, o.Version())
		require.NotNil(t, o.PaymentAmount())
		assert.True(t, amount.Equal(*o.PaymentAmount()))
		require.Len(t, o.Lines(), 1)

		id, err := o.Lines()[0].ID()
		require.NoError(t, err)
		assert.True(t, id.IsEqual(beerorder.LineID{OrderID: 42, BeerID: 1}))
	})

	t.Run("rejects a line belonging to another order", func(t *testing.T) {
		line, err := beerorder.RestoreBeerOrderLine(7, 1, 0, "Galaxy Cat", 3, beerorder.LineStatusNew)
		require.NoError(t, err)

		_, err = beerorder.RestoreBeerOrder(42, 0, "cust-1", nil, beerorder.StatusNew,
			[]*beerorder.BeerOrderLine{line}, now, now)
		require.ErrorIs(t, err, errs.ErrPreconditionViolated)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := beerorder.RestoreBeerOrder(42, 0, "cust-1", nil, beerorder.StatusUnknown, nil, now, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreBeerOrderLine(t *testing.T) {
	_, err := beerorder.RestoreBeerOrderLine(0, 1, 0, "Galaxy Cat", 3, beerorder.LineStatusNew)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = beerorder.RestoreBeerOrderLine(42, 1, 0, "Galaxy Cat", 0, beerorder.LineStatusNew)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = beerorder.RestoreBeerOrderLine(42, 1, 0, "Galaxy Cat", 3, beerorder.LineStatusUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBeerOrder_IsEqual(t *testing.T) {
	now := time.Now()
	persisted42a, _ := beerorder.RestoreBeerOrder(42, 0, "cust-1", nil, beerorder.StatusNew, nil, now, now)
	persisted42b, _ := beerorder.RestoreBeerOrder(42, 3, "cust-2", nil, beerorder.StatusDelivered, nil, now, now)
	persisted7, _ := beerorder.RestoreBeerOrder(7, 0, "cust-1", nil, beerorder.StatusNew, nil, now, now)
	transientA, _ := beerorder.NewBeerOrder("cust-1")
	transientB, _ := beerorder.NewBeerOrder("cust-1")

	assert.True(t, persisted42a.IsEqual(persisted42b))
	assert.False(t, persisted42a.IsEqual(persisted7))
	assert.False(t, transientA.IsEqual(transientB))
	assert.False(t, persisted42a.IsEqual(nil))
}

func TestLineID_IsEqual(t *testing.T) {
	id, err := beerorder.NewLineID(42, 1)
	require.NoError(t, err)

	assert.True(t, id.IsEqual(beerorder.LineID{OrderID: 42, BeerID: 1}))
	assert.False(t, id.IsEqual(beerorder.LineID{OrderID: 42, BeerID: 2}))
	assert.False(t, id.IsEqual(beerorder.LineID{OrderID: 7, BeerID: 1}))

	_, err = beerorder.NewLineID(0, 1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = beerorder.NewLineID(42, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
