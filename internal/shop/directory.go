package shop

import (
	"sort"
	"strings"
)

// Page sizes of the two directory views.
const (
	PerPageArea = 8
	PerPageAll  = 30
)

// FastDeliveryMaxMinutes is the "fast delivery" filter cutoff.
const FastDeliveryMaxMinutes = 30

// VeryGoodRating is the rating filter threshold.
const VeryGoodRating = 4.0

// maxVisiblePages is how many page numbers show before collapsing behind
// an ellipsis.
const maxVisiblePages = 6

// Filter is the active filter set; all enabled conditions must hold.
type Filter struct {
	Query        string
	VeryGood     bool
	FreeDelivery bool
	FastDelivery bool
}

func (f Filter) matches(s Shop) bool {
	if f.Query != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(strings.TrimSpace(f.Query))) {
		return false
	}
	if f.VeryGood && s.Rating < VeryGoodRating {
		return false
	}
	if f.FreeDelivery && !s.IsFree() {
		return false
	}
	if f.FastDelivery && (s.DeliveryTimeMinutes <= 0 || s.DeliveryTimeMinutes > FastDeliveryMaxMinutes) {
		return false
	}
	return true
}

// ApplyFilter returns the shops matching every active filter, in input
// order.
func ApplyFilter(shops []Shop, f Filter) []Shop {
	var out []Shop
	for _, s := range shops {
		if f.matches(s) {
			out = append(out, s)
		}
	}
	return out
}

type SortKey string

const (
	SortByName         SortKey = "name"
	SortByMinOrder     SortKey = "min_order"
	SortByDeliveryTime SortKey = "delivery_time"
	SortByDeliveryFee  SortKey = "delivery_fee"
	SortByRating       SortKey = "rating"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState tracks the selected sort key and direction; selecting the
// same key again flips the direction.
type SortState struct {
	Key SortKey
	Dir Direction
}

func (st *SortState) Select(key SortKey) {
	if st.Key == key {
		if st.Dir == Ascending {
			st.Dir = Descending
		} else {
			st.Dir = Ascending
		}
		return
	}
	st.Key = key
	st.Dir = Ascending
}

// Sort orders a copy of shops by the given key and direction. Unknown
// keys leave the order untouched.
func Sort(shops []Shop, key SortKey, dir Direction) []Shop {
	out := make([]Shop, len(shops))
	copy(out, shops)

	var less func(a, b Shop) bool
	switch key {
	case SortByName:
		less = func(a, b Shop) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByMinOrder:
		less = func(a, b Shop) bool {
			return a.MinOrderAmount.LessThan(b.MinOrderAmount)
		}
	case SortByDeliveryTime:
		less = func(a, b Shop) bool {
			return deliveryTimeOrMax(a) < deliveryTimeOrMax(b)
		}
	case SortByDeliveryFee:
		less = func(a, b Shop) bool {
			return a.DeliveryFee.LessThan(b.DeliveryFee)
		}
	case SortByRating:
		less = func(a, b Shop) bool {
			return a.Rating < b.Rating
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// unknown delivery times sort last
func deliveryTimeOrMax(s Shop) int {
	if s.DeliveryTimeMinutes <= 0 {
		return 999
	}
	return s.DeliveryTimeMinutes
}

// PageControl is one entry of the rendered pagination bar: either a page
// number (possibly the active one) or an ellipsis.
type PageControl struct {
	Page     int  `json:"page,omitempty"`
	Active   bool `json:"active,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Page is one slice of the filtered+sorted directory.
type Page struct {
	Shops      []Shop        `json:"shops"`
	Number     int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
	HasPrev    bool          `json:"has_prev"`
	HasNext    bool          `json:"has_next"`
	NoMatches  bool          `json:"no_matches"`
	Controls   []PageControl `json:"controls"`
}

// Paginate slices shops into fixed-size pages. The requested page is
// clamped to [1, totalPages].
func Paginate(shops []Shop, page, perPage int) Page {
	if perPage <= 0 {
		perPage = PerPageAll
	}

	total := len(shops)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	var slice []Shop
	if start < total {
		slice = shops[start:end]
	}

	return Page{
		Shops:      slice,
		Number:     page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages && total > 0,
		NoMatches:  total == 0,
		Controls:   pageControls(page, totalPages, total),
	}
}

func pageControls(current, totalPages, total int) []PageControl {
	if total == 0 || totalPages <= 1 {
		return nil
	}

	num := func(p int) PageControl {
		return PageControl{Page: p, Active: p == current}
	}
	dots := PageControl{Ellipsis: true}

	var controls []PageControl

	// all pages fit
	if totalPages <= maxVisiblePages {
		for i := 1; i <= totalPages; i++ {
			controls = append(controls, num(i))
		}
		return controls
	}

	// near the start: 1 2 3 4 5 6 ... N
	if current <= 4 {
		for i := 1; i <= maxVisiblePages; i++ {
			controls = append(controls, num(i))
		}
		return append(controls, dots, num(totalPages))
	}

	// near the end: 1 ... N-5 .. N
	if current >= totalPages-3 {
		controls = append(controls, num(1), dots)
		for i := totalPages - 5; i <= totalPages; i++ {
			controls = append(controls, num(i))
		}
		return controls
	}

	// middle: 1 ... c-2 .. c+2 ... N
	controls = append(controls, num(1), dots)
	for i := current - 2; i <= current+2; i++ {
		controls = append(controls, num(i))
	}
	return append(controls, dots, num(totalPages))
}
