package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itexe-marketplace-api/internal/genai"
	"itexe-marketplace-api/internal/handler"
	"itexe-marketplace-api/internal/model"
	"itexe-marketplace-api/internal/repository"
	"itexe-marketplace-api/internal/router"
	"itexe-marketplace-api/internal/service"
)

// newTestServer wires the full application over an in-memory repository.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	repo := repository.NewMemoryStateRepository()
	notifications := service.NewNotificationService(time.Minute)
	users := service.NewUserService(ctx, repo, notifications)
	products := service.NewProductService(ctx, repo, notifications, users)
	cart := service.NewCartService(notifications)

	r := router.New(router.Config{
		Handler:             handler.New("test"),
		AuthHandler:         handler.NewAuthHandler(users),
		ProductHandler:      handler.NewProductHandler(products, users),
		CartHandler:         handler.NewCartHandler(cart, products),
		NotificationHandler: handler.NewNotificationHandler(notifications),
		DescribeHandler:     handler.NewDescribeHandler(genai.NewClient(genai.Config{Model: "gemini-2.5-flash"})),
		Session:             users,
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp, env
}

func TestBrowseReturnsAvailableSeedListings(t *testing.T) {
	server := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Products []model.Listing `json:"products"`
		Count    int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	// The seed catalog holds one sold listing, excluded by default.
	assert.Equal(t, len(model.SeedListings())-1, data.Count)
	for _, l := range data.Products {
		assert.Equal(t, model.StatusAvailable, l.Status)
	}
}

func TestLatestListingsTruncatesToFour(t *testing.T) {
	server := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/products/latest", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listings []model.Listing
	require.NoError(t, json.Unmarshal(env.Data, &listings))
	assert.Len(t, listings, 4)
}

func TestCreateListingRequiresSession(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/products", model.ListingDraft{
		Name: "Something", Category: model.CategoryGPU, Condition: model.ConditionGood,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterAndSellFlow(t *testing.T) {
	server := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/register",
		map[string]string{"name": "Amal Gunasekara", "email": "amal@example.lk", "password": "pw"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user model.Identity
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.False(t, user.IsVerified)

	// Duplicate registration is rejected while signed in via the anonymous
	// gate, so log out first and try the same name again.
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/register",
		map[string]string{"name": "amal GUNASEKARA", "password": "pw"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Log back in (demo semantics adopt the first roster entry) and sell.
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login",
		map[string]string{"email": "x@example.lk", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodPost, server.URL+"/api/v1/products", model.ListingDraft{
		Name:      "EVGA 600W PSU",
		Category:  model.CategoryPSU,
		Price:     14000,
		Condition: model.ConditionGood,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var listing model.Listing
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, model.NextListingID(model.SeedListings()), listing.ID)
	assert.Equal(t, model.StatusAvailable, listing.Status)
}

func TestLoginUnreachableWhileAuthenticated(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login",
		map[string]string{"email": "x", "password": "y"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login",
		map[string]string{"email": "x", "password": "y"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/register",
		map[string]string{"name": "Someone New", "password": "y"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpdateForeignListingForbidden(t *testing.T) {
	server := newTestServer(t)

	// Login adopts seed user 1; seed listing 2 belongs to seed user 2.
	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login",
		map[string]string{"email": "x", "password": "y"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/products/2/sold", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMarkOwnListingSold(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login",
		map[string]string{"email": "x", "password": "y"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/products/1/sold", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing model.Listing
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, model.StatusSold, listing.Status)
}

func TestCartFlow(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items",
		map[string]int64{"productId": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Adding the same unique item again is rejected as a conflict.
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items",
		map[string]int64{"productId": 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart struct {
		Items      []model.CartLine `json:"items"`
		ItemCount  int              `json:"itemCount"`
		TotalPrice float64          `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.ItemCount)
	assert.Equal(t, cart.Items[0].Price, cart.TotalPrice)

	// Checkout marks the listing sold and empties the cart.
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/checkout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodGet, server.URL+"/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)

	resp, env = doJSON(t, http.MethodGet, server.URL+"/api/v1/products/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listing model.Listing
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, model.StatusSold, listing.Status)

	// A sold listing cannot be added to the cart.
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items",
		map[string]int64{"productId": 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestNotificationsListAndDismiss(t *testing.T) {
	server := newTestServer(t)

	// Trigger a notification through a store mutation.
	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items",
		map[string]int64{"productId": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/notifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notifications []model.Notification
	require.NoError(t, json.Unmarshal(env.Data, &notifications))
	require.NotEmpty(t, notifications)

	resp, _ = doJSON(t, http.MethodDelete,
		server.URL+"/api/v1/notifications/"+strconv.FormatInt(notifications[0].ID, 10), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDescribeRequiresSessionAndKey(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/describe",
		map[string]string{"productName": "RTX 3080", "category": "GPU"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// With a session but no API key the feature reports unavailable.
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login",
		map[string]string{"email": "x", "password": "y"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/describe",
		map[string]string{"productName": "RTX 3080", "category": "GPU"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
