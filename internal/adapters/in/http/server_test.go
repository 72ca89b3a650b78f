package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "brewery/internal/adapters/in/http"
	"brewery/internal/core/application/usecases/queries"
	"brewery/internal/core/domain/model/beer"
	"brewery/internal/core/domain/model/beerorder"
	"brewery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBeerReader struct{ mock.Mock }

func (m *MockBeerReader) Get(ctx context.Context, id int) (*beer.Beer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*beer.Beer), args.Error(1)
}
func (m *MockBeerReader) GetAll(ctx context.Context) ([]*beer.Beer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*beer.Beer), args.Error(1)
}

type MockBeerOrderReader struct{ mock.Mock }

func (m *MockBeerOrderReader) Get(ctx context.Context, id int) (*beerorder.BeerOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*beerorder.BeerOrder), args.Error(1)
}

func newEcho(handlers httpadapter.Handlers) *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	httpadapter.NewServer(handlers, logger).RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})
	rec := doRequest(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestGetBeer_Success(t *testing.T) {
	b, err := beer.RestoreBeer(
		7, 1, "Galaxy Cat", "PALE_ALE", "0631234200036", 122,
		decimal.NewFromFloat(12.99), time.Now(), time.Now())
	require.NoError(t, err)

	reader := new(MockBeerReader)
	reader.On("Get", mock.Anything, 7).Return(b, nil).Once()

	e := newEcho(httpadapter.Handlers{GetBeer: queries.NewGetBeerQueryHandler(reader)})
	rec := doRequest(e, http.MethodGet, "/api/v1/beers/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 7, body["id"])
	assert.Equal(t, "Galaxy Cat", body["name"])
	assert.Equal(t, "0631234200036", body["upc"])
}

func TestGetBeer_NotFoundProblem(t *testing.T) {
	reader := new(MockBeerReader)
	reader.On("Get", mock.Anything, 99).
		Return(nil, errs.NewObjectNotFoundError("beerId", 99)).Once()

	e := newEcho(httpadapter.Handlers{GetBeer: queries.NewGetBeerQueryHandler(reader)})
	rec := doRequest(e, http.MethodGet, "/api/v1/beers/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var problem map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Not Found", problem["title"])
	assert.EqualValues(t, http.StatusNotFound, problem["status"])
}

func TestGetBeer_InvalidPathID(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})
	rec := doRequest(e, http.MethodGet, "/api/v1/beers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBeerOrder_Success(t *testing.T) {
	line, err := beerorder.RestoreBeerOrderLine(42, 7, 0, "Galaxy Cat", 2, beerorder.LineStatusNew)
	require.NoError(t, err)
	order, err := beerorder.RestoreBeerOrder(
		42, 0, "customer-123", nil, beerorder.StatusNew,
		[]*beerorder.BeerOrderLine{line}, time.Now(), time.Now())
	require.NoError(t, err)

	reader := new(MockBeerOrderReader)
	reader.On("Get", mock.Anything, 42).Return(order, nil).Once()

	e := newEcho(httpadapter.Handlers{GetBeerOrder: queries.NewGetBeerOrderQueryHandler(reader)})
	rec := doRequest(e, http.MethodGet, "/api/v1/beer-orders/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 42, body["id"])
	assert.Equal(t, "NEW", body["status"])
	lines, ok := body["beerOrderLines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)
	first := lines[0].(map[string]any)
	assert.EqualValues(t, 7, first["beerId"])
	assert.Equal(t, "Galaxy Cat", first["beerName"])
}

func TestGetBeerOrder_NotFoundProblem(t *testing.T) {
	reader := new(MockBeerOrderReader)
	reader.On("Get", mock.Anything, 99).
		Return(nil, errs.NewObjectNotFoundError("orderId", 99)).Once()

	e := newEcho(httpadapter.Handlers{GetBeerOrder: queries.NewGetBeerOrderQueryHandler(reader)})
	rec := doRequest(e, http.MethodGet, "/api/v1/beer-orders/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceBeerOrder_ValidationRejectsEmptyItems(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})
	rec := doRequest(e, http.MethodPost, "/api/v1/beer-orders",
		`{"customerRef":"customer-123","items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceBeerOrder_ValidationRejectsMissingCustomerRef(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})
	rec := doRequest(e, http.MethodPost, "/api/v1/beer-orders",
		`{"items":[{"beerId":1,"quantity":2}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBeer_ValidationRejectsMissingName(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})
	rec := doRequest(e, http.MethodPost, "/api/v1/beers",
		`{"style":"PALE_ALE","upc":"0631234200036","quantityOnHand":10,"price":12.99}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCustomer_ValidationRejectsBadEmail(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})
	rec := doRequest(e, http.MethodPost, "/api/v1/customers",
		`{"name":"John","email":"not-an-email","addressLine1":"123 Main St","city":"St Pete","state":"FL","postalCode":"33701"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCustomer_ValidationRejectsMissingAddress(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})
	rec := doRequest(e, http.MethodPost, "/api/v1/customers",
		`{"name":"John","city":"St Pete","state":"FL","postalCode":"33701"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidBody_Returns400Problem(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})
	rec := doRequest(e, http.MethodPost, "/api/v1/beers", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Bad Request", problem["title"])
}
