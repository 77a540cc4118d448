package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"itexe-marketplace-api/internal/model"
	"itexe-marketplace-api/internal/repository"
)

// ProductService owns the listing catalog. The full catalog is persisted on
// every mutation; startup falls back to the seed catalog when persisted
// state is absent or unreadable. New listings are prepended, so the stored
// order is newest-first by insertion.
type ProductService struct {
	mu       sync.RWMutex
	repo     repository.StateRepository
	notifier Notifier
	session  SessionReader
	listings []model.Listing
}

// NewProductService creates the product service and restores persisted
// state. Never fails: corruption and absence both degrade to seed data.
func NewProductService(ctx context.Context, repo repository.StateRepository, notifier Notifier, session SessionReader) *ProductService {
	s := &ProductService{repo: repo, notifier: notifier, session: session}
	s.listings = s.loadCatalog(ctx)
	return s
}

// loadCatalog reads the persisted catalog, falling back to seed listings.
func (s *ProductService) loadCatalog(ctx context.Context) []model.Listing {
	data, err := s.repo.Get(ctx, repository.KeyProducts)
	if err != nil {
		log.Printf("[ProductService] failed to read products: %v", err)
		return model.SeedListings()
	}
	if data == nil {
		return model.SeedListings()
	}

	var listings []model.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		log.Printf("[ProductService] corrupt products state, using seed data: %v", err)
		return model.SeedListings()
	}
	return listings
}

// AddListing creates a listing from the draft on behalf of the signed-in
// identity. The new listing gets the next id, today's date, a snapshot of
// the seller, and Available status, and is prepended to the catalog.
func (s *ProductService) AddListing(ctx context.Context, draft model.ListingDraft) (model.Listing, error) {
	seller := s.session.Current()
	if seller == nil {
		s.notifier.Notify("You must be logged in to sell an item.", model.NotifyError)
		return model.Listing{}, ErrNotAuthenticated
	}

	if err := validateDraft(draft); err != nil {
		s.notifier.Notify(err.Error(), model.NotifyError)
		return model.Listing{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing := model.Listing{
		ID:          model.NextListingID(s.listings),
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Description: draft.Description,
		Condition:   draft.Condition,
		ImageURL:    draft.ImageURL,
		Seller:      *seller,
		DatePosted:  time.Now().Format(model.DateLayout),
		Status:      model.StatusAvailable,
	}
	s.listings = append([]model.Listing{listing}, s.listings...)
	s.persistLocked(ctx)

	s.notifier.Notify("Your product has been listed successfully!", model.NotifySuccess)
	return listing, nil
}

// validateDraft checks the caller-supplied listing fields.
func validateDraft(draft model.ListingDraft) error {
	if draft.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidListing)
	}
	if !draft.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidListing, draft.Category)
	}
	if !draft.Condition.Valid() {
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidListing, draft.Condition)
	}
	if draft.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidListing)
	}
	return nil
}

// UpdateListing replaces the stored listing with the matching id by full
// overwrite. Only the listing's seller may update it, and a sold listing
// never transitions back to Available.
func (s *ProductService) UpdateListing(ctx context.Context, updated model.Listing) error {
	caller := s.session.Current()
	if caller == nil {
		s.notifier.Notify("You must be logged in to update a listing.", model.NotifyError)
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listings {
		if l.ID != updated.ID {
			continue
		}
		if l.Seller.ID != caller.ID {
			s.notifier.Notify("You can only update your own listings.", model.NotifyError)
			return ErrNotListingOwner
		}
		if l.Status == model.StatusSold && updated.Status != model.StatusSold {
			s.notifier.Notify("Sold items cannot be re-listed.", model.NotifyError)
			return ErrListingSold
		}

		s.listings[i] = updated
		s.persistLocked(ctx)

		s.notifier.Notify("Product status updated.", model.NotifyInfo)
		return nil
	}
	return ErrListingNotFound
}

// MarkSold flips the caller's listing to Sold. Convenience wrapper over
// UpdateListing for the account page's "Mark as Sold" action.
func (s *ProductService) MarkSold(ctx context.Context, listingID int64) error {
	listing, err := s.Get(listingID)
	if err != nil {
		return err
	}
	listing.Status = model.StatusSold
	return s.UpdateListing(ctx, listing)
}

// CompleteSale marks a listing Sold as part of a buyer's checkout. Unlike
// UpdateListing it does not require ownership; it is only reachable through
// the checkout flow. Selling an already-sold listing is rejected.
func (s *ProductService) CompleteSale(ctx context.Context, listingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listings {
		if l.ID != listingID {
			continue
		}
		if l.Status == model.StatusSold {
			return ErrListingSold
		}

		s.listings[i].Status = model.StatusSold
		s.persistLocked(ctx)
		return nil
	}
	return ErrListingNotFound
}

// Get returns a copy of the listing with the given id.
func (s *ProductService) Get(listingID int64) (model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.listings {
		if l.ID == listingID {
			return l, nil
		}
	}
	return model.Listing{}, ErrListingNotFound
}

// Listings returns a copy of the full catalog in stored order.
func (s *ProductService) Listings() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Listing, len(s.listings))
	copy(result, s.listings)
	return result
}

// ListingsBySeller returns the listings posted by the given identity.
func (s *ProductService) ListingsBySeller(sellerID int64) []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Listing
	for _, l := range s.listings {
		if l.Seller.ID == sellerID {
			result = append(result, l)
		}
	}
	return result
}

// persistLocked writes the catalog back to storage. Write failures are
// logged and swallowed; persistence is best-effort.
func (s *ProductService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.listings)
	if err != nil {
		log.Printf("[ProductService] failed to encode products: %v", err)
		return
	}
	if err := s.repo.Set(ctx, repository.KeyProducts, data); err != nil {
		log.Printf("[ProductService] failed to persist products: %v", err)
	}
}
