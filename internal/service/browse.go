package service

import (
	"sort"
	"strings"

	"itexe-marketplace-api/internal/model"
)

// SortKey selects the ordering of a browse result.
type SortKey string

const (
	// SortNewest orders by descending posting date; listings posted the
	// same day keep their relative catalog order.
	SortNewest SortKey = "newest"
	// SortPriceAsc orders by ascending price.
	SortPriceAsc SortKey = "price_asc"
	// SortPriceDesc orders by descending price.
	SortPriceDesc SortKey = "price_desc"
)

// BrowseOptions configures the catalog filter pipeline. Zero values mean
// "no constraint": empty search matches everything, empty (or "all")
// category and condition match everything, and MaxPrice <= 0 means no cap.
type BrowseOptions struct {
	Search      string
	Category    model.Category
	Condition   model.Condition
	MaxPrice    float64
	IncludeSold bool
	Sort        SortKey
}

// FilterListings applies the browse filters conjunctively, then sorts.
// Pure over its input: the snapshot is never mutated and nothing is
// retained between calls.
func FilterListings(listings []model.Listing, opts BrowseOptions) []model.Listing {
	search := strings.ToLower(opts.Search)

	result := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if !opts.IncludeSold && l.Status != model.StatusAvailable {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(l.Name), search) {
			continue
		}
		if opts.Category != "" && opts.Category != "all" && l.Category != opts.Category {
			continue
		}
		if opts.Condition != "" && opts.Condition != "all" && l.Condition != opts.Condition {
			continue
		}
		if opts.MaxPrice > 0 && l.Price > opts.MaxPrice {
			continue
		}
		result = append(result, l)
	}

	switch opts.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PostedAt().After(result[j].PostedAt())
		})
	}

	return result
}

// LatestListings returns the n most recently posted available listings,
// as shown on the home page.
func LatestListings(listings []model.Listing, n int) []model.Listing {
	result := FilterListings(listings, BrowseOptions{Sort: SortNewest})
	if len(result) > n {
		result = result[:n]
	}
	return result
}
