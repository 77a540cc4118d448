package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"itexe-marketplace-api/internal/model"
	"itexe-marketplace-api/internal/service"
	"itexe-marketplace-api/pkg/apierror"
	"itexe-marketplace-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// ProductHandler handles catalog-related HTTP requests.
type ProductHandler struct {
	productService *service.ProductService
	userService    *service.UserService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService *service.ProductService, userService *service.UserService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		userService:    userService,
	}
}

// browseOptionsFromQuery builds the filter configuration from query params.
func browseOptionsFromQuery(r *http.Request) service.BrowseOptions {
	q := r.URL.Query()

	opts := service.BrowseOptions{
		Search:    q.Get("search"),
		Category:  model.Category(q.Get("category")),
		Condition: model.Condition(q.Get("condition")),
		Sort:      service.SortKey(q.Get("sort")),
	}
	if maxPrice, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		opts.MaxPrice = maxPrice
	}
	if includeSold, err := strconv.ParseBool(q.Get("include_sold")); err == nil {
		opts.IncludeSold = includeSold
	}
	return opts
}

// Browse handles GET /api/v1/products
func (h *ProductHandler) Browse(w http.ResponseWriter, r *http.Request) {
	listings := service.FilterListings(h.productService.Listings(), browseOptionsFromQuery(r))
	response.OK(w, map[string]interface{}{
		"products": listings,
		"count":    len(listings),
	})
}

// Latest handles GET /api/v1/products/latest
func (h *ProductHandler) Latest(w http.ResponseWriter, r *http.Request) {
	limit := 4
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		limit = n
	}
	response.OK(w, service.LatestListings(h.productService.Listings(), limit))
}

// Get handles GET /api/v1/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apierror.BadRequest("invalid listing id"))
		return
	}

	listing, err := h.productService.Get(id)
	if err != nil {
		response.Error(w, domainError(err))
		return
	}
	response.OK(w, listing)
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft model.ListingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	listing, err := h.productService.AddListing(r.Context(), draft)
	if err != nil {
		response.Error(w, domainError(err))
		return
	}
	response.Created(w, listing)
}

// Update handles PUT /api/v1/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apierror.BadRequest("invalid listing id"))
		return
	}

	var listing model.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}
	listing.ID = id

	if err := h.productService.UpdateListing(r.Context(), listing); err != nil {
		response.Error(w, domainError(err))
		return
	}
	response.OK(w, listing)
}

// MarkSold handles POST /api/v1/products/{id}/sold
func (h *ProductHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apierror.BadRequest("invalid listing id"))
		return
	}

	if err := h.productService.MarkSold(r.Context(), id); err != nil {
		response.Error(w, domainError(err))
		return
	}

	listing, err := h.productService.Get(id)
	if err != nil {
		response.Error(w, domainError(err))
		return
	}
	response.OK(w, listing)
}

// Mine handles GET /api/v1/products/mine
func (h *ProductHandler) Mine(w http.ResponseWriter, r *http.Request) {
	current := h.userService.Current()
	if current == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	listings := h.productService.ListingsBySeller(current.ID)
	response.OK(w, map[string]interface{}{
		"products": listings,
		"count":    len(listings),
	})
}
