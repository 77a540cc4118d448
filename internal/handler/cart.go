package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"itexe-marketplace-api/internal/model"
	"itexe-marketplace-api/internal/service"
	"itexe-marketplace-api/pkg/apierror"
	"itexe-marketplace-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// CartHandler handles shopping-cart HTTP requests.
type CartHandler struct {
	cartService    *service.CartService
	productService *service.ProductService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService *service.CartService, productService *service.ProductService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		productService: productService,
	}
}

// cartView is the derived cart state returned to clients. Count and total
// are recomputed on every request, never cached.
type cartView struct {
	Items      []model.CartLine `json:"items"`
	ItemCount  int              `json:"itemCount"`
	TotalPrice float64          `json:"totalPrice"`
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:      h.cartService.Items(),
		ItemCount:  h.cartService.ItemCount(),
		TotalPrice: h.cartService.TotalPrice(),
	}
}

// Get handles GET /api/v1/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.view())
}

type addToCartRequest struct {
	ProductID int64 `json:"productId"`
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	listing, err := h.productService.Get(req.ProductID)
	if err != nil {
		response.Error(w, domainError(err))
		return
	}

	if err := h.cartService.Add(listing); err != nil {
		response.Error(w, domainError(err))
		return
	}
	response.OK(w, h.view())
}

// RemoveItem handles DELETE /api/v1/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apierror.BadRequest("invalid listing id"))
		return
	}

	h.cartService.Remove(id)
	response.OK(w, h.view())
}

// Clear handles DELETE /api/v1/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cartService.Clear()
	response.NoContent(w)
}

// Checkout handles POST /api/v1/cart/checkout. Every cart line's listing is
// marked Sold; lines whose listing was sold by someone else in the meantime
// are skipped. The cart is cleared afterwards.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	items := h.cartService.Items()
	if len(items) == 0 {
		response.Error(w, apierror.BadRequest("cart is empty"))
		return
	}

	purchased := make([]int64, 0, len(items))
	skipped := make([]int64, 0)
	for _, line := range items {
		err := h.productService.CompleteSale(r.Context(), line.ID)
		switch {
		case err == nil:
			purchased = append(purchased, line.ID)
		case errors.Is(err, service.ErrListingSold), errors.Is(err, service.ErrListingNotFound):
			skipped = append(skipped, line.ID)
		default:
			response.Error(w, domainError(err))
			return
		}
	}

	h.cartService.Clear()
	response.OK(w, map[string]interface{}{
		"purchased": purchased,
		"skipped":   skipped,
	})
}
