package models

import "fmt"

// Category is the classification assigned to a problem description.
// The zero value is General. Other packages can only obtain the five
// declared values, so every Category is valid.
type Category struct {
	id uint8
}

// Category values. Index order matches categorySlugs.
var (
	General      = Category{id: 0}
	Optimization = Category{id: 1}
	Search       = Category{id: 2}
	Simulation   = Category{id: 3}
	Cryptography = Category{id: 4}
)

// NumCategories is the number of declared categories.
const NumCategories = 5

var categorySlugs = [NumCategories]string{
	"general",
	"optimization",
	"search",
	"simulation",
	"cryptography",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{General, Optimization, Search, Simulation, Cryptography}
}

// ParseCategory finds a category by its slug.
func ParseCategory(slug string) (Category, bool) {
	for i, s := range categorySlugs {
		if s == slug {
			return Category{id: uint8(i)}, true
		}
	}
	return General, false
}

// Index returns a stable position in [0, NumCategories), suitable for
// indexing fixed-size tables.
func (c Category) Index() int {
	return int(c.id)
}

// String returns the category slug.
func (c Category) String() string {
	return categorySlugs[c.id]
}

// MarshalText encodes the category as its slug.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a slug.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown category %q", text)
	}
	*c = parsed
	return nil
}
