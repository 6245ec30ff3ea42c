package question

// Category is the cognitive domain a question exercises.
type Category string

const (
	CategoryVerbal    Category = "verbal"
	CategoryNumerical Category = "numerical"
	CategorySpatial   Category = "spatial"
	CategoryLogical   Category = "logical"
	CategoryMemory    Category = "memory"
	CategoryPattern   Category = "pattern"
)

// AllCategories returns every category in canonical order. The order is
// load-bearing: the challenge composer derives per-category seeds from a
// category's position in this slice.
func AllCategories() []Category {
	return []Category{
		CategoryVerbal,
		CategoryNumerical,
		CategorySpatial,
		CategoryLogical,
		CategoryMemory,
		CategoryPattern,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryVerbal:
		return "Verbal"
	case CategoryNumerical:
		return "Numerical"
	case CategorySpatial:
		return "Spatial"
	case CategoryLogical:
		return "Logical"
	case CategoryMemory:
		return "Memory"
	case CategoryPattern:
		return "Pattern Recognition"
	default:
		return string(c)
	}
}

// CategoryOf resolves a question's category, mapping anything outside the
// known enumeration to CategoryLogical. Total by construction: bank
// content with a typo'd category degrades to the default instead of
// falling through.
func CategoryOf(q Question) Category {
	switch q.Category {
	case CategoryVerbal, CategoryNumerical, CategorySpatial,
		CategoryLogical, CategoryMemory, CategoryPattern:
		return q.Category
	default:
		return CategoryLogical
	}
}
