package menu

import (
	"fmt"
	"math"

	"github.com/ziadkadry99/smoothie-menu/internal/catalog"
)

const (
	// DefaultDescription is shown for items without a description.
	DefaultDescription = "A delicious treat"

	// PriceUnavailable is shown instead of a price when none is known.
	PriceUnavailable = "N/A"
)

// PairItems splits items, in order, into layout groups of two. A trailing
// odd item forms a group on its own.
func PairItems(items []catalog.Item) [][]catalog.Item {
	groups := make([][]catalog.Item, 0, (len(items)+1)/2)
	for i := 0; i < len(items); i += 2 {
		end := i + 2
		if end > len(items) {
			end = len(items)
		}
		groups = append(groups, items[i:end:end])
	}
	return groups
}

// FormatPrice renders a price with two decimals and a dollar sign. A missing
// price and a zero price both render as PriceUnavailable.
func FormatPrice(price *float64) string {
	if price == nil || *price == 0 || math.IsNaN(*price) {
		return PriceUnavailable
	}
	return fmt.Sprintf("$%.2f", *price)
}

// Description returns the item's description or DefaultDescription.
func Description(it catalog.Item) string {
	if it.Description == "" {
		return DefaultDescription
	}
	return it.Description
}
