package http

import (
	"time"

	"brewery/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Wire DTOs. Request bodies are validated via struct tags bound to echo's
// Validator; responses are mapped from the query view types so command and
// query paths return identical shapes.

type orderItemRequest struct {
	BeerID   int `json:"beerId" validate:"required,gt=0"`
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type placeBeerOrderRequest struct {
	CustomerRef string             `json:"customerRef" validate:"required"`
	Items       []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type beerOrderLineResponse struct {
	OrderID  int    `json:"orderId"`
	BeerID   int    `json:"beerId"`
	BeerName string `json:"beerName"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
	Version  int    `json:"version"`
}

type beerOrderResponse struct {
	ID            int                     `json:"id"`
	Version       int                     `json:"version"`
	CustomerRef   string                  `json:"customerRef"`
	PaymentAmount *decimal.Decimal        `json:"paymentAmount"`
	Status        string                  `json:"status"`
	Lines         []beerOrderLineResponse `json:"beerOrderLines"`
	CreatedAt     time.Time               `json:"createdDate"`
	UpdatedAt     time.Time               `json:"updatedDate"`
}

func newBeerOrderResponse(view queries.GetBeerOrderQueryResponse) beerOrderResponse {
	lines := make([]beerOrderLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, beerOrderLineResponse{
			OrderID:  line.OrderID,
			BeerID:   line.BeerID,
			BeerName: line.BeerName,
			Quantity: line.Quantity,
			Status:   line.Status,
			Version:  line.Version,
		})
	}
	return beerOrderResponse{
		ID:            view.ID,
		Version:       view.Version,
		CustomerRef:   view.CustomerRef,
		PaymentAmount: view.PaymentAmount,
		Status:        view.Status,
		Lines:         lines,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}

type beerRequest struct {
	Name           string          `json:"name" validate:"required"`
	Style          string          `json:"style" validate:"required"`
	UPC            string          `json:"upc" validate:"required"`
	QuantityOnHand int             `json:"quantityOnHand" validate:"gte=0"`
	Price          decimal.Decimal `json:"price" validate:"required"`
}

type beerResponse struct {
	ID             int             `json:"id"`
	Version        int             `json:"version"`
	Name           string          `json:"name"`
	Style          string          `json:"style"`
	UPC            string          `json:"upc"`
	QuantityOnHand int             `json:"quantityOnHand"`
	Price          decimal.Decimal `json:"price"`
	CreatedAt      time.Time       `json:"createdDate"`
	UpdatedAt      time.Time       `json:"updatedDate"`
}

func newBeerResponse(view queries.BeerResponse) beerResponse {
	return beerResponse{
		ID:             view.ID,
		Version:        view.Version,
		Name:           view.Name,
		Style:          view.Style,
		UPC:            view.UPC,
		QuantityOnHand: view.QuantityOnHand,
		Price:          view.Price,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

type customerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postalCode" validate:"required"`
}

type customerResponse struct {
	ID           int       `json:"id"`
	Version      int       `json:"version"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	CreatedAt    time.Time `json:"createdDate"`
	UpdatedAt    time.Time `json:"updatedDate"`
}

func newCustomerResponse(view queries.CustomerResponse) customerResponse {
	return customerResponse{
		ID:           view.ID,
		Version:      view.Version,
		Name:         view.Name,
		Email:        view.Email,
		Phone:        view.Phone,
		AddressLine1: view.AddressLine1,
		AddressLine2: view.AddressLine2,
		City:         view.City,
		State:        view.State,
		PostalCode:   view.PostalCode,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}
