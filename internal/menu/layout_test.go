package menu

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/smoothie-menu/internal/catalog"
)

func price(v float64) *float64 { return &v }

func itemsNamed(names ...string) []catalog.Item {
	out := make([]catalog.Item, len(names))
	for i, n := range names {
		out[i] = catalog.Item{ID: fmt.Sprint(i + 1), Name: n}
	}
	return out
}

func groupNames(groups [][]catalog.Item) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = make([]string, len(g))
		for j, it := range g {
			out[i][j] = it.Name
		}
	}
	return out
}

func TestPairItems(t *testing.T) {
	tests := []struct {
		names []string
		want  [][]string
	}{
		{nil, [][]string{}},
		{[]string{"A"}, [][]string{{"A"}}},
		{[]string{"A", "B"}, [][]string{{"A", "B"}}},
		{[]string{"A", "B", "C"}, [][]string{{"A", "B"}, {"C"}}},
		{[]string{"A", "B", "C", "D"}, [][]string{{"A", "B"}, {"C", "D"}}},
		{[]string{"A", "B", "C", "D", "E"}, [][]string{{"A", "B"}, {"C", "D"}, {"E"}}},
	}
	for _, tt := range tests {
		got := groupNames(PairItems(itemsNamed(tt.names...)))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("PairItems(%v) mismatch (-want +got):\n%s", tt.names, diff)
		}
	}
}

func TestPairItemsGroupCount(t *testing.T) {
	for n := 0; n <= 9; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("item-%d", i)
		}
		groups := PairItems(itemsNamed(names...))
		if want := (n + 1) / 2; len(groups) != want {
			t.Errorf("n=%d: got %d groups, want %d", n, len(groups), want)
		}
		if n == 0 {
			continue
		}
		last := groups[len(groups)-1]
		if oddTail := len(last) == 1; oddTail != (n%2 == 1) {
			t.Errorf("n=%d: last group has %d items", n, len(last))
		}
	}
}

func TestPairItemsDoesNotAlias(t *testing.T) {
	items := itemsNamed("A", "B", "C")
	groups := PairItems(items)
	groups[0] = append(groups[0], catalog.Item{Name: "X"})
	if items[2].Name != "C" {
		t.Errorf("appending to a group overwrote the source slice: %q", items[2].Name)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "N/A"},
		{price(0), "N/A"},
		{price(9.5), "$9.50"},
		{price(3), "$3.00"},
		{price(4.999), "$5.00"},
		{price(12.345), "$12.35"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDescription(t *testing.T) {
	if got := Description(catalog.Item{}); got != "A delicious treat" {
		t.Errorf("missing description = %q", got)
	}
	if got := Description(catalog.Item{Description: "Kale and apple"}); got != "Kale and apple" {
		t.Errorf("description = %q", got)
	}
}

func TestImageURL(t *testing.T) {
	const base = "http://localhost:5000/api"
	const placeholder = "images/resource/menu-11.jpg"

	tests := []struct {
		ref, want string
	}{
		{"", placeholder},
		{"http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"/uploads/a.jpg", base + "/uploads/a.jpg"},
		{"uploads/a.jpg", base + "uploads/a.jpg"},
	}
	for _, tt := range tests {
		if got := ImageURL(base, placeholder, tt.ref); got != tt.want {
			t.Errorf("ImageURL(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}
