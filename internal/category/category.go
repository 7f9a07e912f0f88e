// Package category defines the fixed display order for expense categories.
package category

// Order is the canonical category list. Position in the slice is the
// display rank; anything not listed sorts after everything that is.
var Order = []string{
	"食費",
	"外食",
	"日用品",
	"住居・光熱費",
	"交通費",
	"その他",
}

// Rank returns the display rank for a category label. Labels outside the
// canonical list all share rank len(Order); ties among them are broken
// lexicographically by the caller.
func Rank(label string) int {
	for i, c := range Order {
		if c == label {
			return i
		}
	}
	return len(Order)
}

// Less reports whether category a displays before category b:
// by rank first, then lexicographically by label.
func Less(a, b string) bool {
	ra, rb := Rank(a), Rank(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}
