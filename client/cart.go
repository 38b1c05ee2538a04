package client

import (
	"errors"
	"sync"
)

// ErrInvalidQuantity is returned when a quantity update asks for less than 1.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartLine is one product in the cart. Name and price are copies taken from
// the product when it was added; the server reprices at checkout.
type CartLine struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// CartStore holds the shopper's working selection before checkout. It is an
// explicitly owned object, not package state, and is safe for concurrent use.
type CartStore struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Add puts one unit of the product in the cart. Adding a product that is
// already present increments its quantity instead of duplicating the line.
func (s *CartStore) Add(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
}

// Remove deletes the line for productID; removing an absent product is a no-op.
func (s *CartStore) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for productID. Quantities below 1 are
// rejected and leave the cart unchanged.
func (s *CartStore) UpdateQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (s *CartStore) Lines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartLine(nil), s.lines...)
}

// Len reports the number of distinct products in the cart.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Total is the sum of price times quantity over all lines, recomputed on
// every call.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
