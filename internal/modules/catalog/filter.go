package catalog

import "strings"

// FilterAll is the sentinel value that disables the ingredient or category
// predicate entirely.
const FilterAll = "all"

// FilterCriteria narrows the product list. Criteria classes combine with AND;
// zero-valued criteria are ignored.
type FilterCriteria struct {
	SearchTerm string
	Ailments   []AilmentType
	Ingredient string
	Category   string
}

// Filter returns the products matching every set criterion, preserving the
// input order. Ailment selection is conjunctive: a product must carry every
// selected tag, so selecting spiritual and physical narrows to products
// serving both.
func Filter(products []Product, c FilterCriteria) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, c.SearchTerm) {
			continue
		}
		if !matchesAilments(p, c.Ailments) {
			continue
		}
		if !matchesIngredient(p, c.Ingredient) {
			continue
		}
		if !matchesCategory(p, c.Category) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesSearch(p Product, term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), t) ||
		strings.Contains(strings.ToLower(p.Description), t)
}

func matchesAilments(p Product, selected []AilmentType) bool {
	for _, want := range selected {
		found := false
		for _, have := range p.Ailments {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesIngredient(p Product, ingredient string) bool {
	if ingredient == "" || ingredient == FilterAll {
		return true
	}
	for _, name := range p.Ingredients {
		if name == ingredient {
			return true
		}
	}
	return false
}

func matchesCategory(p Product, category string) bool {
	if category == "" || category == FilterAll {
		return true
	}
	return p.Category == category
}
