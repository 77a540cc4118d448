package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itexe-marketplace-api/internal/model"
)

func availableListing(id int64, price float64) model.Listing {
	return model.Listing{
		ID:         id,
		Name:       "GTX 1660 Super",
		Category:   model.CategoryGPU,
		Price:      price,
		Condition:  model.ConditionGood,
		DatePosted: "2024-05-01",
		Status:     model.StatusAvailable,
	}
}

func TestAddToCart(t *testing.T) {
	notifier := NewNotificationService(time.Minute)
	cart := NewCartService(notifier)

	require.NoError(t, cart.Add(availableListing(1, 45000)))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)

	active := notifier.Active()
	require.NotEmpty(t, active)
	assert.Equal(t, model.NotifySuccess, active[0].Kind)
}

func TestAddToCartRejectsSoldListing(t *testing.T) {
	notifier := NewNotificationService(time.Minute)
	cart := NewCartService(notifier)

	sold := availableListing(1, 45000)
	sold.Status = model.StatusSold

	err := cart.Add(sold)
	assert.ErrorIs(t, err, ErrListingSold)
	assert.Empty(t, cart.Items())

	active := notifier.Active()
	require.NotEmpty(t, active)
	assert.Equal(t, model.NotifyError, active[0].Kind)
}

func TestAddToCartIsIdempotentPerListing(t *testing.T) {
	notifier := NewNotificationService(time.Minute)
	cart := NewCartService(notifier)

	listing := availableListing(7, 12000)
	require.NoError(t, cart.Add(listing))
	before := cart.Items()

	err := cart.Add(listing)
	assert.ErrorIs(t, err, ErrAlreadyInCart)
	assert.Equal(t, before, cart.Items(), "second add must leave the cart unchanged")

	// The second add reports info, not success.
	active := notifier.Active()
	require.Len(t, active, 2)
	assert.Equal(t, model.NotifyInfo, active[1].Kind)
}

func TestCartLineIsASnapshot(t *testing.T) {
	cart := NewCartService(NewNotificationService(time.Minute))

	listing := availableListing(3, 9000)
	require.NoError(t, cart.Add(listing))

	// Selling the listing after it was added does not reach into the line.
	listing.Status = model.StatusSold
	listing.Price = 1

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, model.StatusAvailable, items[0].Status)
	assert.Equal(t, 9000.0, items[0].Price)
}

func TestRemoveFromCart(t *testing.T) {
	notifier := NewNotificationService(time.Minute)
	cart := NewCartService(notifier)

	require.NoError(t, cart.Add(availableListing(1, 100)))
	require.NoError(t, cart.Add(availableListing(2, 200)))

	cart.Remove(1)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].ID)
}

func TestRemoveAbsentLineStillNotifies(t *testing.T) {
	notifier := NewNotificationService(time.Minute)
	cart := NewCartService(notifier)

	cart.Remove(42)

	assert.Empty(t, cart.Items())
	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, model.NotifyInfo, active[0].Kind)
}

func TestClearCartIsSilent(t *testing.T) {
	notifier := NewNotificationService(time.Minute)
	cart := NewCartService(notifier)

	require.NoError(t, cart.Add(availableListing(1, 100)))
	queued := len(notifier.Active())

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Len(t, notifier.Active(), queued, "clear must not emit a notification")
}

func TestDerivedTotals(t *testing.T) {
	cart := NewCartService(NewNotificationService(time.Minute))

	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, 0.0, cart.TotalPrice())

	require.NoError(t, cart.Add(availableListing(1, 45000)))
	require.NoError(t, cart.Add(availableListing(2, 12500)))

	assert.Equal(t, 2, cart.ItemCount())
	assert.Equal(t, 57500.0, cart.TotalPrice())

	// Recomputing without mutation yields identical results.
	assert.Equal(t, cart.ItemCount(), cart.ItemCount())
	assert.Equal(t, cart.TotalPrice(), cart.TotalPrice())
}
