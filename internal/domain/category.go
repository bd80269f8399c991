package domain

// Categories are plain string tags with set semantics: no duplicates, order
// of first insertion preserved.

// DefaultCategories returns the department tags a fresh store is seeded with.
func DefaultCategories() []string {
	return []string{"BSH", "IT", "COMPS", "EXTC", "IEEE", "IET", "IETE"}
}
