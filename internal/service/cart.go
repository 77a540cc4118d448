package service

import (
	"fmt"
	"sync"

	"itexe-marketplace-api/internal/model"
)

// CartService owns the current shopping selection. The cart is session
// scoped and never persisted; it starts empty on every process start.
// Lines are value copies of the listing at add time (copy-on-add): marking
// the listing Sold later does not change a line already in the cart.
type CartService struct {
	mu       sync.RWMutex
	notifier Notifier
	lines    []model.CartLine
}

// NewCartService creates an empty cart.
func NewCartService(notifier Notifier) *CartService {
	return &CartService{notifier: notifier}
}

// Add appends a snapshot of the listing with quantity 1. Sold listings are
// rejected; a listing already in the cart leaves the cart unchanged and
// reports with an info, not an error.
func (s *CartService) Add(listing model.Listing) error {
	if listing.Status == model.StatusSold {
		s.notifier.Notify("This item has already been sold.", model.NotifyError)
		return ErrListingSold
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.ID == listing.ID {
			s.notifier.Notify("This unique item is already in your cart.", model.NotifyInfo)
			return ErrAlreadyInCart
		}
	}

	s.lines = append(s.lines, model.NewCartLine(listing))
	s.notifier.Notify(fmt.Sprintf("%s added to cart!", listing.Name), model.NotifySuccess)
	return nil
}

// Remove drops the line with the given listing id. Removing an absent line
// is a no-op; the info notification is emitted either way.
func (s *CartService) Remove(listingID int64) {
	s.mu.Lock()
	for i, line := range s.lines {
		if line.ID == listingID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Notify("Item removed from cart.", model.NotifyInfo)
}

// Clear empties the cart silently. Used after checkout.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// Items returns a copy of the cart lines in add order.
func (s *CartService) Items() []model.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.CartLine, len(s.lines))
	copy(result, s.lines)
	return result
}

// ItemCount is the total quantity across all lines, recomputed per call.
func (s *CartService) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// TotalPrice is the sum of price times quantity, recomputed per call.
func (s *CartService) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
