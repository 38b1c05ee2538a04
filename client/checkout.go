package client

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrEmptyCart means there was nothing to submit; no request was sent.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutInFlight means a submission is already outstanding.
	ErrCheckoutInFlight = errors.New("checkout already in progress")

	// ErrShippingIncomplete means a required shipping field was blank.
	ErrShippingIncomplete = errors.New("all shipping fields are required")
)

// ShippingInfo is the delivery detail collected on the checkout page.
type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type orderPayloadItem struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderPayload struct {
	Items        []orderPayloadItem `json:"items"`
	TotalPrice   float64            `json:"totalPrice"`
	ShippingInfo *ShippingInfo      `json:"shippingInfo,omitempty"`
}

// CheckoutFlow turns the cart into a submitted order. The cart is cleared
// only on confirmed success; on any failure it is left intact so the user
// can retry.
type CheckoutFlow struct {
	cart *CartStore
	api  *Client

	mu       sync.Mutex
	inFlight bool
}

func NewCheckoutFlow(cart *CartStore, api *Client) *CheckoutFlow {
	return &CheckoutFlow{cart: cart, api: api}
}

// Submit places an order from the current cart contents.
func (f *CheckoutFlow) Submit(ctx context.Context) (*Order, error) {
	return f.submit(ctx, nil)
}

// SubmitWithShipping places an order with delivery details. All three
// shipping fields must be filled in or the submission aborts locally.
func (f *CheckoutFlow) SubmitWithShipping(ctx context.Context, info ShippingInfo) (*Order, error) {
	if info.Name == "" || info.Address == "" || info.Phone == "" {
		return nil, ErrShippingIncomplete
	}
	return f.submit(ctx, &info)
}

func (f *CheckoutFlow) submit(ctx context.Context, info *ShippingInfo) (*Order, error) {
	if !f.begin() {
		return nil, ErrCheckoutInFlight
	}
	defer f.end()

	lines := f.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Prices here are display hints only; the server reprices every line
	// from the catalog.
	items := make([]orderPayloadItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, orderPayloadItem{
			Product:  line.ProductID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	payload := &orderPayload{
		Items:        items,
		TotalPrice:   f.cart.Total(),
		ShippingInfo: info,
	}

	order, err := f.api.createOrder(ctx, payload)
	if err != nil {
		return nil, err
	}

	f.cart.Clear()
	return order, nil
}

// begin acquires the in-flight guard; it returns false when a submission is
// already outstanding.
func (f *CheckoutFlow) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return false
	}
	f.inFlight = true
	return true
}

func (f *CheckoutFlow) end() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}
