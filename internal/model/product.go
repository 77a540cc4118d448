package model

import "time"

// Category classifies a listing by part type.
type Category string

const (
	CategoryCPU         Category = "CPU"
	CategoryGPU         Category = "GPU"
	CategoryMotherboard Category = "Motherboard"
	CategoryRAM         Category = "RAM"
	CategoryStorage     Category = "Storage"
	CategoryPSU         Category = "PSU"
	CategoryCase        Category = "Case"
	CategoryCooling     Category = "Cooling"
	CategoryOther       Category = "Other"
)

// Categories returns all valid listing categories in display order.
func Categories() []Category {
	return []Category{
		CategoryCPU, CategoryGPU, CategoryMotherboard, CategoryRAM,
		CategoryStorage, CategoryPSU, CategoryCase, CategoryCooling,
		CategoryOther,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Condition describes the wear state of a secondhand part.
type Condition string

const (
	ConditionNew     Condition = "New"
	ConditionLikeNew Condition = "Like New"
	ConditionGood    Condition = "Good"
	ConditionUsed    Condition = "Used"
)

// Conditions returns all valid conditions in display order.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionUsed}
}

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	for _, known := range Conditions() {
		if c == known {
			return true
		}
	}
	return false
}

// ListingStatus is the sale state of a listing. The transition is one-way:
// Available -> Sold. There is no re-listing.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "Available"
	StatusSold      ListingStatus = "Sold"
)

// DateLayout is the day-granularity format used for Listing.DatePosted.
const DateLayout = "2006-01-02"

// Listing is a single secondhand part offered for sale. Each listing is
// unique stock of exactly one unit. Seller is a snapshot of the posting
// identity taken at creation time; later identity changes do not propagate.
type Listing struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Category    Category      `json:"category"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Condition   Condition     `json:"condition"`
	ImageURL    string        `json:"imageUrl"`
	Seller      Identity      `json:"seller"`
	DatePosted  string        `json:"datePosted"`
	Status      ListingStatus `json:"status"`
}

// PostedAt parses DatePosted. A malformed date sorts as the zero time.
func (l Listing) PostedAt() time.Time {
	t, err := time.Parse(DateLayout, l.DatePosted)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ListingDraft carries the caller-supplied fields of a new listing.
// ID, seller, posting date and status are assigned by the catalog.
type ListingDraft struct {
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Condition   Condition `json:"condition"`
	ImageURL    string    `json:"imageUrl"`
}

// NextListingID returns the id for a new listing: one past the highest id
// currently in the catalog, or 1 for an empty catalog.
func NextListingID(listings []Listing) int64 {
	var max int64
	for _, l := range listings {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}
